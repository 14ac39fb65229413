package main

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	SaveDirectory string
	StateFile     string
	Palette       Palette
	Restore       bool
	Confirmations bool
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		StateFile:     defaultStateFile,
		Palette:       DefaultPalette(),
		Restore:       true,
		Confirmations: true,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".scrawlrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir", "save_dir":
			config.SaveDirectory = expandPath(homeDir, value)
		case "statefile", "state_file":
			if value != "" {
				config.StateFile = value
			}
		case "palette", "colors":
			palette, err := ParsePalette(strings.Split(value, ","))
			if err != nil {
				log.Printf("[config] %v, keeping default palette", err)
				continue
			}
			config.Palette = palette
		case "restore":
			config.Restore = strings.ToLower(value) == "true"
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "logfile", "log_file":
			config.LogFile = expandPath(homeDir, value)
		}
	}

	return config
}

func expandPath(homeDir, value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) StatePath() string {
	if filepath.IsAbs(c.StateFile) {
		return c.StateFile
	}
	return c.GetSavePath(c.StateFile)
}
