package main

import (
	"fmt"

	"github.com/rabidaudio/shuffle/library"
	"github.com/spf13/cobra"
)

var packDir string

var packCmd = &cobra.Command{
	Use:   "pack IMAGE",
	Short: "Copies the music files in a folder into a new FAT32 disk image.",
	Long: `Copies the music files in a folder into a new FAT32 disk image, renamed
to 8.3 names. The image can be written to a USB stick or played back
with --image.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packed, err := library.Dir{Root: packDir}.Pack(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range packed {
			fmt.Fprintf(out, "%s -> %s\n", p.Name, p.ShortName)
		}
		fmt.Fprintf(out, "Packed %d files into %s\n", len(packed), args[0])
		return nil
	},
}

func init() {
	packCmd.Flags().StringVar(&packDir, "dir", ".", "directory to copy music files from")
	rootCmd.AddCommand(packCmd)
}
