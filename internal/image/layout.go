package imagepkg

import (
	"image"
	"image/color"

	"github.com/youruser/idcardapp/internal/cards"
	"golang.org/x/image/font"
)

// Canvas and element geometry.
const (
	CanvasWidth  = 400
	CanvasHeight = 350

	PhotoWidth  = 70
	PhotoHeight = 80

	photoRightInset = 80
	blockGap        = 15
	bannerPad       = 5

	fieldX     = 10
	fieldStep  = 25
	dobOffset  = 50
	headerTopY = 10
)

// Role selects the face a text block is drawn with.
type Role int

const (
	RoleSmall Role = iota
	RoleMedium
	RoleLarge
	RoleDetail
)

var (
	colorText        = color.RGBA{R: 0, G: 0, B: 122, A: 255}
	colorAuthority   = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorBanner      = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	colorBannerText  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorAlert       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorPlaceholder = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Header lines, top to bottom, with the gap that precedes each line after
// the first.
var headerLines = [4]struct {
	text  string
	role  Role
	color color.RGBA
	gap   int
}{
	{"Govt. of Bihar", RoleSmall, colorAuthority, 0},
	{"Department of Science & Technology", RoleSmall, colorText, 5},
	{"GAYA COLLEGE OF ENGINEERING, GAYA", RoleLarge, colorText, 10},
	{"Sri Krishan Nagar P.O Nagriyawan Khizersari, Gaya-823003", RoleSmall, colorText, 15},
}

const (
	bannerTitle = "STUDENT IDENTITY CARD"
	bannerGap   = 20
)

// Field labels.
const (
	LabelName        = "NAME: "
	LabelFatherName  = "F_NAME: "
	LabelRollNumber  = "Roll NO: "
	LabelBranch      = "BRANCH: "
	LabelSession     = "SESSION: "
	LabelBloodGroup  = "BLOOD GROUP: "
	LabelDateOfBirth = "DOB: "
	LabelAddress     = "Add.: "
)

// Text is a positioned run of text. (X, Y) is the top-left corner of the
// line box; Width and Height are the measured ink box.
type Text struct {
	Text   string
	Role   Role
	Color  color.RGBA
	X, Y   int
	Width  int
	Height int
}

// Layout is every position computed for one card.
type Layout struct {
	Header [4]Text
	// Banner is the filled area; its corners are inclusive of BannerBottom.
	Banner       image.Rectangle
	BannerText   Text
	BannerBottom int
	Photo        image.Rectangle
	Fields       []Text
}

// ComputeLayout positions every element of the card for the given faces.
// Each header line starts below the previous line's measured height plus a
// fixed gap, so the stack never overlaps whatever the faces measure.
func ComputeLayout(fonts *FontSet, rec cards.Record) Layout {
	var l Layout

	y, prevH := headerTopY, 0
	for i, h := range headerLines {
		if i > 0 {
			y += prevH + h.gap
		}
		w, ht := Measure(fonts.Face(h.role), h.text)
		l.Header[i] = Text{Text: h.text, Role: h.role, Color: h.color, X: centerX(w), Y: y, Width: w, Height: ht}
		prevH = ht
	}

	bw, bh := Measure(fonts.Face(RoleMedium), bannerTitle)
	bannerTop := y + prevH + bannerGap
	x1, y1 := centerX(bw)-bannerPad, bannerTop-bannerPad
	x2, y2 := x1+bw+2*bannerPad, y1+bh+2*bannerPad
	l.Banner = image.Rect(x1, y1, x2+1, y2+1)
	l.BannerBottom = y2
	l.BannerText = Text{
		Text: bannerTitle, Role: RoleMedium, Color: colorBannerText,
		X: centerX(bw), Y: y1 + bannerPad, Width: bw, Height: bh,
	}

	top := y2 + blockGap
	l.Photo = image.Rect(CanvasWidth-photoRightInset, top, CanvasWidth-photoRightInset+PhotoWidth, top+PhotoHeight)
	l.Fields = fieldBlock(fonts.Detail, rec, top)
	return l
}

func fieldBlock(face font.Face, rec cards.Record, y int) []Text {
	line := func(x, y int, s string, c color.RGBA) Text {
		w, h := Measure(face, s)
		return Text{Text: s, Role: RoleDetail, Color: c, X: x, Y: y, Width: w, Height: h}
	}

	var out []Text
	for _, f := range []struct{ label, value string }{
		{LabelName, rec.Name},
		{LabelFatherName, rec.FatherName},
		{LabelRollNumber, rec.MaskedRollNumber()},
		{LabelBranch, rec.Branch},
		{LabelSession, rec.Session},
	} {
		out = append(out, line(fieldX, y, f.label+f.value, colorText))
		y += fieldStep
	}

	label := line(fieldX, y, LabelBloodGroup, colorText)
	out = append(out,
		label,
		line(fieldX+label.Width, y, rec.BloodGroup, colorAlert),
		line(fieldX+label.Width+dobOffset, y, LabelDateOfBirth+rec.DateOfBirth, colorText),
	)
	y += fieldStep

	// No wrapping: long addresses run off the canvas.
	out = append(out, line(fieldX, y, LabelAddress+rec.Address, colorText))
	return out
}
