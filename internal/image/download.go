package imagepkg

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/youruser/idcardapp/internal/util"
)

// DownloadPhoto fetches a photo by URL with client. Any failure, including a
// refused address or a body larger than limit bytes, yields an unreadable
// photo so the card still renders.
func DownloadPhoto(ctx context.Context, client *http.Client, url string, timeout time.Duration, limit int64) *Photo {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := util.GetBytes(ctx, client, url, limit)
	if err != nil {
		return PhotoUnreadable(fmt.Errorf("download photo: %w", err))
	}
	return PhotoBytes(body)
}
