package wizard

import (
	"errors"
	"strconv"
	"strings"
)

// Defaults seeds the wizard with the values currently in effect, so
// flags and existing configuration pre-fill the form.
type Defaults struct {
	AssetsDir   string
	AssetExt    string
	Port        int
	OpenBrowser bool
}

// DefaultQuestions returns the standard set of questions for site
// configuration. The questions follow this order:
// 1. Assets folder name
// 2. Asset file extension
// 3. Development server port
// 4. Open browser on serve
func DefaultQuestions(d Defaults) []Question {
	openBrowser := "true"
	if !d.OpenBrowser {
		openBrowser = "false"
	}

	return []Question{
		{
			ID:          "assets_dir",
			Type:        QuestionTypeInput,
			Title:       "Assets folder name",
			Description: "The folder under the site root that holds the PDF files.",
			Default:     d.AssetsDir,
			Required:    true,
			Validate:    validateName,
		},
		{
			ID:          "asset_ext",
			Type:        QuestionTypeInput,
			Title:       "Asset file extension",
			Description: "Only files with this exact extension are listed.",
			Default:     d.AssetExt,
			Required:    true,
			Validate:    validateExt,
		},
		{
			ID:          "port",
			Type:        QuestionTypeInput,
			Title:       "Development server port",
			Description: "The port seima serve listens on.",
			Default:     strconv.Itoa(d.Port),
			Required:    true,
			Validate:    validatePort,
		},
		{
			ID:          "open_browser",
			Type:        QuestionTypeSelect,
			Title:       "Open browser when serving?",
			Description: "Whether seima serve opens the site in your browser.",
			Options: []Option{
				{Label: "Yes", Value: "true", Desc: "open the site automatically"},
				{Label: "No", Value: "false", Desc: "print the URL only"},
			},
			Default:  openBrowser,
			Required: true,
		},
	}
}

// validateName rejects names containing path separators; folder and file
// names must live directly under the site root.
func validateName(val string) error {
	if strings.ContainsAny(val, `/\`) {
		return errors.New("must be a plain name, not a path")
	}
	return nil
}

// validateExt requires a literal extension with a leading dot.
func validateExt(val string) error {
	if !strings.HasPrefix(val, ".") || len(val) < 2 {
		return errors.New("must start with a dot, like .pdf")
	}
	return nil
}

// validatePort requires a TCP port number.
func validatePort(val string) error {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n < 1 || n > 65535 {
		return errors.New("must be a number between 1 and 65535")
	}
	return nil
}
