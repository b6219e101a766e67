package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to bridgeway.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to bridgeway! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = strings.TrimSpace(name)

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	sourcePrompt := promptui.Prompt{
		Label:   "Content document (URL or file path)",
		Default: cfg.ContentSource,
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	cfg.ContentSource = strings.TrimSpace(source)

	endpointPrompt := promptui.Prompt{
		Label:   "Form forwarding endpoint (empty to disable)",
		Default: cfg.FormEndpoint,
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("form endpoint: %w", err)
	}
	cfg.FormEndpoint = strings.TrimSpace(endpoint)

	reloadPrompt := promptui.Select{
		Label: "Enable live reload during development",
		Items: []string{"yes", "no"},
	}
	_, reload, err := reloadPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("live reload: %w", err)
	}
	cfg.LiveReload = reload == "yes"

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save("bridgeway.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to bridgeway.yml")
	return cfg, nil
}
