package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/admin"
)

// resourceCommands builds the uniform list/create/update/delete
// command set for one resource. Drafts are read from JSON files so the
// same payload shape works for create and update.
func resourceCommands[T any, Req any](use, label string, manager func(*app) *admin.Manager[T, Req]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Manage %ss", label),
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss", label),
		Run: func(c *cobra.Command, _ []string) {
			a, err := newApp()
			if err != nil {
				exitErr("failed to initialize", err)
			}

			m := manager(a)
			if err := m.Store().FetchAll(c.Context()); err != nil {
				exitErr(fmt.Sprintf("failed to fetch %ss", label), fmt.Errorf("%s", m.Store().Err()))
			}
			printJSON(m.Search(search))
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring filter")

	var draftPath string
	create := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s from a JSON draft", label),
		Run: func(c *cobra.Command, _ []string) {
			a, err := newApp()
			if err != nil {
				exitErr("failed to initialize", err)
			}

			req, err := readDraft[Req](draftPath)
			if err != nil {
				exitErr("failed to read draft", err)
			}

			created, err := manager(a).Save(c.Context(), "", req)
			if err != nil {
				exitErr(fmt.Sprintf("failed to create %s", label), err)
			}
			printJSON(created)
		},
	}
	create.Flags().StringVarP(&draftPath, "file", "f", "", "Draft JSON file")
	create.MarkFlagRequired("file")

	var updatePath string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: fmt.Sprintf("Update a %s from a JSON draft", label),
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				exitErr("failed to initialize", err)
			}

			req, err := readDraft[Req](updatePath)
			if err != nil {
				exitErr("failed to read draft", err)
			}

			updated, err := manager(a).Save(c.Context(), args[0], req)
			if err != nil {
				exitErr(fmt.Sprintf("failed to update %s", label), err)
			}
			printJSON(updated)
		},
	}
	update.Flags().StringVarP(&updatePath, "file", "f", "", "Draft JSON file")
	update.MarkFlagRequired("file")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", label),
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				exitErr("failed to initialize", err)
			}

			if err := manager(a).Delete(c.Context(), args[0]); err != nil {
				exitErr(fmt.Sprintf("failed to delete %s", label), err)
			}
			fmt.Printf("%s %s deleted\n", label, args[0])
		},
	}

	cmd.AddCommand(list, create, update, remove)
	return cmd
}

func readDraft[Req any](path string) (Req, error) {
	var req Req
	raw, err := os.ReadFile(path)
	if err != nil {
		return req, err
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("invalid draft JSON: %w", err)
	}
	return req, nil
}
