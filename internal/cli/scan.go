package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetrainer/internal/ble"
)

var scanTimeout time.Duration

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for GoCube devices",
	Long: `Scan for GoCube smart cubes over Bluetooth and print their addresses.
Pass an address to "train --device" to connect to a specific cube.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 5*time.Second, "How long to scan")
}

func runScan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanning for GoCube devices...")

	client, err := ble.NewClient()
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), scanTimeout)
	defer cancel()
	results, err := client.Scan(ctx, scanTimeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No GoCube devices found")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Tips:")
		fmt.Fprintln(out, "  - Ensure your GoCube is powered on")
		fmt.Fprintln(out, "  - Move the cube to wake it up")
		fmt.Fprintln(out, "  - Disconnect it from other apps")
		return nil
	}
	fmt.Fprintf(out, "Found %d device(s):\n", len(results))
	for _, r := range results {
		fmt.Fprintf(out, "  - %s (address: %s, RSSI: %d)\n", r.Name, r.ID(), r.RSSI)
	}
	return nil
}
