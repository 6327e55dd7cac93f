package main

import (
	"encoding/json"
	"fmt"
	"io"

	"book-catalog/internal/domains/book/model"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [book-id]",
	Short: "Print the detail view of one book",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the detail as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := loadContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Cleanup()

	detail, err := c.BookService.NewSession().Detail(args[0])
	if err != nil {
		return err
	}

	if jsonFlag {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}
	renderDetail(cmd.OutOrStdout(), detail)
	return nil
}

func renderDetail(w io.Writer, d model.Detail) {
	fmt.Fprintln(w, d.Title)
	fmt.Fprintln(w, d.Subtitle)
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Description)
	if d.Image != "" {
		fmt.Fprintf(w, "\nCover: %s\n", d.Image)
	}
}
