package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/youruser/idcardapp/internal/batch"
	"github.com/youruser/idcardapp/internal/cards"
	"github.com/youruser/idcardapp/internal/util"
	"golang.org/x/exp/slog"
)

// ManifestName is the manifest file written next to a batch's cards.
const ManifestName = "manifest.txt"

var (
	batchOutDir  string
	batchPhotos  string
	batchName    string
	batchQuality int
	batchFilter  cards.FilterOptions
)

var batchCmd = &cobra.Command{
	Use:   "batch <records.csv>",
	Short: "Render one ID card per CSV row",
	Long: `Reads a CSV whose header names every card field (name, father_name,
roll_number, branch, session, blood_group, date_of_birth, address, or the
desktop form keys NAME, F_NAME, roll_no, Branch, Session, blood_group, DOB,
ADD.) plus an optional photo column, renders the selected rows and writes
a manifest.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVarP(&batchOutDir, "out", "o", "./cards_out", "output directory")
	f.StringVar(&batchPhotos, "photos", "", "base directory for relative photo paths (default: CSV directory)")
	f.StringVar(&batchName, "name", "", "batch name written to the manifest")
	f.IntVarP(&batchQuality, "quality", "q", cfg.JPEGQuality, "JPEG quality 1-100")
	f.StringSliceVar(&batchFilter.Branches, "branch", nil, "only render these branches")
	f.StringSliceVar(&batchFilter.Sessions, "session", nil, "only render these sessions")
	f.StringSliceVar(&batchFilter.BloodGroups, "blood-group", nil, "only render these blood groups")
	f.StringVar(&batchFilter.FreeWords, "match", "", "only render rows whose name, father's name or address contain every word")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	csvPath := args[0]
	rows, err := cards.LoadRecordsCSV(csvPath)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	selected := cards.Filter(rows, batchFilter)
	logger.Info("batch loaded", slog.String("csv", csvPath), slog.Int("rows", len(rows)), slog.Int("selected", len(selected)))
	if len(selected) == 0 {
		return fmt.Errorf("no rows selected from %s", csvPath)
	}

	photoDir := batchPhotos
	if photoDir == "" {
		photoDir = filepath.Dir(csvPath)
	}
	if err := util.EnsureDir(batchOutDir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	renderer := newRenderer()
	b := batch.New(batchName)
	for i, row := range selected {
		photoPath := row.Photo
		if photoPath != "" && !filepath.IsAbs(photoPath) {
			photoPath = filepath.Join(photoDir, photoPath)
		}
		card := renderer.Render(row.Record, photoFile(photoPath))

		name := fmt.Sprintf("%03d-%s.jpg", i+1, util.Slug(row.Record.Name))
		digest, err := writeCard(card.Image, filepath.Join(batchOutDir, name), batchQuality)
		if err != nil {
			return err
		}
		b.Add(batch.Entry{File: name, Name: row.Record.Name, Digest: digest, Photo: card.Photo.String()})
		logger.Debug("card written", slog.String("file", name), slog.String("photo", card.Photo.String()))
	}

	manifestPath := filepath.Join(batchOutDir, ManifestName)
	if err := os.WriteFile(manifestPath, []byte(batch.ExportText(b)), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Cards:     %d\n", len(b.Entries))
	if n := b.Degraded(); n > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  No photo:  %d\n", n)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Manifest:  %s\n", manifestPath)
	return nil
}
