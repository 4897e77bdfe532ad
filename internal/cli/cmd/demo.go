package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/parts"
	"github.com/avdl/panemux/internal/parts/parttest"
)

var demoWindows int

// demoCmd runs the coordinator headlessly against the in-memory part
// implementation: restores the saved snapshot, opens extra windows on
// request, and saves the resulting state back.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless coordinator session against the saved snapshot",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoWindows, "windows", 0, "auxiliary windows to open")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	ctx := app.Ctx()

	factory := parttest.NewFactory()
	factory.MainConfig.WillRestore = app.Config.Session.RestoreWindows

	coordinator, err := parts.New(ctx, parts.Options{
		Factory:     factory,
		Displays:    factory.Displays,
		Store:       app.States,
		WorkspaceID: app.Config.Session.WorkspaceID,
	})
	if err != nil {
		return fmt.Errorf("start coordinator: %w", err)
	}

	if err := coordinator.WhenRestored().Wait(ctx); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	for i := 0; i < demoWindows; i++ {
		part, err := coordinator.CreateAuxiliaryPart(ctx, parts.AuxiliaryPartOptions{
			Bounds: &entity.Rect{X: 100 * (i + 1), Y: 100, Width: 1024, Height: 768},
		})
		if err != nil {
			return fmt.Errorf("open window: %w", err)
		}
		if g := part.ActiveGroup(); g != nil {
			g.Focus()
		}
	}

	for i, p := range coordinator.Parts() {
		fmt.Printf("part %d: %-10s groups=%d window=%s\n",
			i, displayLabel(p, coordinator), p.GroupCount(), p.WindowID())
	}
	fmt.Printf("total groups: %d\n", coordinator.GroupCount())

	if err := coordinator.SaveState(ctx); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	fmt.Println("state saved")
	return nil
}

func displayLabel(p parts.Part, c *parts.Coordinator) string {
	if p == c.MainPart() {
		return "main"
	}
	return p.Label()
}
