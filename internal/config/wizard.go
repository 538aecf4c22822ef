package config

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/campusnexus/nexus/internal/i18n"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to nexus! Let's point it at your CampusNexus backend.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend URL.
	urlPrompt := promptui.Prompt{
		Label:   "Backend URL",
		Default: cfg.BaseURL,
		Validate: func(s string) error {
			u, err := url.Parse(s)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("enter an absolute URL such as http://localhost:8000")
			}
			return nil
		},
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	cfg.BaseURL = baseURL

	// 2. Interface language.
	codes := i18n.Supported()
	items := make([]string, len(codes))
	for i, code := range codes {
		items[i] = fmt.Sprintf("%s (%s)", i18n.Name(code), code)
	}
	langPrompt := promptui.Select{
		Label: "Select interface language",
		Items: items,
	}
	langIdx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.Language = codes[langIdx]

	// 3. Retrieved passages per answer.
	topKPrompt := promptui.Prompt{
		Label:   "Sources per answer (top_k)",
		Default: strconv.Itoa(cfg.TopK),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 50 {
				return fmt.Errorf("enter a number between 1 and 50")
			}
			return nil
		},
	}
	topK, err := topKPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("top_k: %w", err)
	}
	cfg.TopK, _ = strconv.Atoi(topK)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
