package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/admin"
	"portfolio-admin/internal/blocks"
	"portfolio-admin/internal/domain"
)

// blogsCmd extends the uniform resource commands with the blog-only
// operations: slug lookup and block rendering.
func blogsCmd() *cobra.Command {
	cmd := resourceCommands("blogs", "blog",
		func(a *app) *admin.Manager[domain.Blog, domain.BlogCreateRequest] { return a.blogs.Manager })
	cmd.AddCommand(blogShowCmd(), blogRenderCmd())
	return cmd
}

func blogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a blog post by slug",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				exitErr("failed to initialize", err)
			}

			post, err := a.blogs.Blogs.FetchBySlug(c.Context(), args[0])
			if err != nil {
				exitErr("failed to fetch blog", err)
			}
			printJSON(post)
		},
	}
}

func blogRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <slug>",
		Short: "Render a blog post's blocks as HTML",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				exitErr("failed to initialize", err)
			}

			post, err := a.blogs.Blogs.FetchBySlug(c.Context(), args[0])
			if err != nil {
				exitErr("failed to fetch blog", err)
			}

			fmt.Printf("<h1>%s</h1>\n%s\n", post.Title, blocks.RenderAll(post.Blocks))
		},
	}
}
