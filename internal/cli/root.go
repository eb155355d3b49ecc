// Package cli implements the portfolio-admin commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"portfolio-admin/internal/admin"
	"portfolio-admin/internal/api"
	"portfolio-admin/internal/config"
	"portfolio-admin/internal/domain"
	"portfolio-admin/internal/session"
)

var baseURLFlag string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "portfolio-admin",
	Short: "Manage portfolio content from the terminal",
	Long:  "Admin client for the portfolio API: blogs, projects, skills, socials and work experience.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&baseURLFlag, "api", "", "API base URL (default: $API_BASE_URL or http://localhost:8080)")

	RootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, serveCmd)
	RootCmd.AddCommand(blogsCmd())
	RootCmd.AddCommand(resourceCommands("projects", "project",
		func(a *app) *admin.Manager[domain.Project, domain.ProjectCreateRequest] { return a.projects }))
	RootCmd.AddCommand(resourceCommands("skills", "skill",
		func(a *app) *admin.Manager[domain.Skill, domain.SkillCreateRequest] { return a.skills }))
	RootCmd.AddCommand(resourceCommands("socials", "social",
		func(a *app) *admin.Manager[domain.Social, domain.SocialCreateRequest] { return a.socials }))
	RootCmd.AddCommand(resourceCommands("experiences", "experience",
		func(a *app) *admin.Manager[domain.Experience, domain.ExperienceCreateRequest] { return a.experiences }))
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires the client core together once per invocation: config,
// durable credentials, HTTP client, session store and the per-resource
// managers. Everything is injected; nothing is a package singleton.
type app struct {
	cfg     *config.Config
	storage *session.Storage
	client  *api.Client
	session *session.Store

	blogs       *admin.BlogManager
	projects    *admin.Manager[domain.Project, domain.ProjectCreateRequest]
	skills      *admin.Manager[domain.Skill, domain.SkillCreateRequest]
	socials     *admin.Manager[domain.Social, domain.SocialCreateRequest]
	experiences *admin.Manager[domain.Experience, domain.ExperienceCreateRequest]
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if baseURLFlag != "" {
		cfg.API.BaseURL = baseURLFlag
	}

	storage, err := session.NewFileStorage(cfg.Credentials.Path)
	if err != nil {
		return nil, err
	}

	var sess *session.Store
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, storage,
		api.WithSignedOutHandler(func() {
			if sess != nil {
				sess.HandleSignedOut()
			}
			fmt.Fprintln(os.Stderr, "session expired, please run 'portfolio-admin login'")
		}))
	sess = session.NewStore(client, storage)

	return &app{
		cfg:         cfg,
		storage:     storage,
		client:      client,
		session:     sess,
		blogs:       admin.NewBlogManager(client),
		projects:    admin.NewProjectManager(client),
		skills:      admin.NewSkillManager(client),
		socials:     admin.NewSocialManager(client),
		experiences: admin.NewExperienceManager(client),
	}, nil
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("failed to encode output", err)
	}
	fmt.Println(string(out))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
