package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/internal/config"
)

func newCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Scaffold a new weft site project",
		Long: `Create a new site project in the given directory.

The scaffold is a Go program that composes pages with the el
catalog and writes them to dist/:

  main.go     Site generator (go run . rebuilds the site)
  weft.yaml   Project manifest for serve and publish
  go.mod      Module definition
  .gitignore  Ignores the build output

Examples:
  weft new my-site
  weft new blog --title="My Blog"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], title)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Site title (default derived from the directory name)")

	return cmd
}

func runNew(dir, title string) error {
	name := filepath.Base(dir)
	if !isValidProjectName(name) {
		return fmt.Errorf("invalid project name %q: use lowercase letters, numbers, and hyphens", name)
	}
	if title == "" {
		title = toTitleCase(name)
	}

	projectDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		return fmt.Errorf("directory %s already exists", dir)
	}

	printBanner()
	fmt.Println("  Creating a new weft site...")
	fmt.Println()

	info("Creating project directory...")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return err
	}

	if err := writeScaffold(projectDir, name, title); err != nil {
		// Clean up on error
		os.RemoveAll(projectDir)
		return err
	}

	info("Installing dependencies...")
	if err := goModTidy(projectDir); err != nil {
		warn("Could not run 'go mod tidy': %v", err)
		info("Run it manually inside %s before building", name)
	}

	fmt.Println()
	success("Created %s/", name)
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	fmt.Printf("    cd %s\n", name)
	fmt.Println("    go run .        # build the site into dist/")
	fmt.Println("    weft serve      # preview it")
	fmt.Println()

	return nil
}

func writeScaffold(projectDir, name, title string) error {
	files := map[string]string{
		"main.go":    generateSiteMain(title),
		"go.mod":     fmt.Sprintf("module %s\n\ngo 1.23\n", name),
		".gitignore": "dist/\n",
	}
	for rel, content := range files {
		info("Creating %s...", rel)
		if err := os.WriteFile(filepath.Join(projectDir, rel), []byte(content), 0644); err != nil {
			return err
		}
	}

	info("Creating %s...", config.FileName)
	cfg := config.New()
	cfg.Name = name
	return cfg.SaveTo(filepath.Join(projectDir, config.FileName))
}

func isValidProjectName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// toTitleCase turns "my-site" into "My Site".
func toTitleCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func goModTidy(dir string) error {
	if _, err := exec.LookPath("go"); err != nil {
		return err
	}
	cmd := exec.Command("go", "mod", "tidy")
	cmd.Dir = dir
	return cmd.Run()
}

// =============================================================================
// Scaffold templates
// =============================================================================

func generateSiteMain(title string) string {
	return fmt.Sprintf(siteMainTemplate, title, title)
}

const siteMainTemplate = `package main

import (
	"log"

	"github.com/weft-dev/weft/el"
	"github.com/weft-dev/weft/pkg/page"
	"github.com/weft-dev/weft/pkg/publish"
)

const styles = "body { font-family: sans-serif; max-width: 40rem; margin: 4rem auto; padding: 0 1rem }\n" +
	"h1 { color: #1f6f54 }\n"

func main() {
	out := publish.NewDir("dist")
	if err := out.Clean(); err != nil {
		log.Fatal(err)
	}

	home := page.Page{
		Lang:   "en",
		Title:  %q,
		Styles: []string{styles},
		Body: el.Main(
			el.H1(%q),
			el.P("This site is generated by the Go code in main.go."),
			el.P("Edit it and run ", el.Code("go run ."), " to rebuild."),
		),
	}

	if err := out.WritePage("index.html", home); err != nil {
		log.Fatal(err)
	}
	log.Println("site written to", out.Root())
}
`
