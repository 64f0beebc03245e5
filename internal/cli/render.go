package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/youruser/idcardapp/internal/cards"
	"golang.org/x/exp/slog"
)

var (
	renderRecord  cards.Record
	renderPhoto   string
	renderOut     string
	renderQuality int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one ID card to an image file",
	Long: `Renders a single card from the field flags and writes it to --out.
The output format follows the file extension (.jpg, .png, ...).
A missing or unreadable --photo renders a placeholder instead.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderRecord.Name, "name", "", "student name")
	f.StringVar(&renderRecord.FatherName, "father-name", "", "father's name")
	f.StringVar(&renderRecord.RollNumber, "roll-number", "", "roll number (printed masked)")
	f.StringVar(&renderRecord.Branch, "branch", "", "branch")
	f.StringVar(&renderRecord.Session, "session", "", "session, e.g. 2021-25")
	f.StringVar(&renderRecord.BloodGroup, "blood-group", "", "blood group")
	f.StringVar(&renderRecord.DateOfBirth, "dob", "", "date of birth")
	f.StringVar(&renderRecord.Address, "address", "", "address")
	f.StringVar(&renderPhoto, "photo", "", "photo file")
	f.StringVarP(&renderOut, "out", "o", "generated_id_card.jpg", "output file")
	f.IntVarP(&renderQuality, "quality", "q", cfg.JPEGQuality, "JPEG quality 1-100")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	card := newRenderer().Render(renderRecord, photoFile(renderPhoto))

	digest, err := writeCard(card.Image, renderOut, renderQuality)
	if err != nil {
		return err
	}
	logger.Debug("card written",
		slog.String("out", renderOut),
		slog.String("photo", card.Photo.String()),
		slog.Bool("font_fallback", card.FontFallback))

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", renderOut, digest, card.Photo)
	return nil
}
