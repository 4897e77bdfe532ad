package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var stateJSON bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or clear the persisted window snapshot",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted auxiliary window snapshot",
	RunE:  runStateShow,
}

var stateClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the persisted snapshot for the workspace",
	RunE:  runStateClear,
}

func init() {
	stateShowCmd.Flags().BoolVar(&stateJSON, "json", false, "output as JSON")
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateClearCmd)
	rootCmd.AddCommand(stateCmd)
}

func runStateShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	workspaceID := app.Config.Session.WorkspaceID

	snapshot, err := app.States.GetSnapshot(app.Ctx(), workspaceID)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if snapshot == nil {
		fmt.Printf("no snapshot stored for workspace %q\n", workspaceID)
		return nil
	}

	if stateJSON {
		out, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "workspace\t%s\n", workspaceID)
	fmt.Fprintf(w, "saved at\t%s\n", snapshot.SavedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "auxiliary windows\t%d\n", len(snapshot.Auxiliary))
	fmt.Fprintf(w, "mru positions\t%v\n", snapshot.MRU)
	for i, aux := range snapshot.Auxiliary {
		if aux.Bounds != nil {
			fmt.Fprintf(w, "window %d bounds\t%dx%d at (%d,%d)\n", i+1,
				aux.Bounds.Width, aux.Bounds.Height, aux.Bounds.X, aux.Bounds.Y)
		}
		if aux.ZoomLevel != nil {
			fmt.Fprintf(w, "window %d zoom\t%.2f\n", i+1, *aux.ZoomLevel)
		}
	}
	return w.Flush()
}

func runStateClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	workspaceID := app.Config.Session.WorkspaceID

	if err := app.States.DeleteSnapshot(app.Ctx(), workspaceID); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	fmt.Printf("snapshot cleared for workspace %q\n", workspaceID)
	return nil
}
