package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
)

type History struct {
	commands []string
	file     string
	max      int
}

func newHistory(file string, limit int) (*History, error) {
	h := &History{
		commands: make([]string, 0, limit),
		file:     file,
		max:      limit,
	}

	// Load existing history
	if err := h.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load history %s: %w", file, err)
	}

	return h, nil
}

func (h *History) load() error {
	f, err := os.Open(h.file)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.add(scanner.Text())
	}

	return scanner.Err()
}

// replay feeds the loaded commands to the line editor so arrow-key recall
// starts where the last session ended.
func (h *History) replay(line *liner.State) {
	for _, cmd := range h.commands {
		line.AppendHistory(cmd)
	}
}

func (h *History) add(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}

	// Don't add duplicates of the last command
	if len(h.commands) > 0 && h.commands[len(h.commands)-1] == cmd {
		return false
	}

	h.commands = append(h.commands, cmd)

	if len(h.commands) > h.max {
		h.commands = h.commands[len(h.commands)-h.max:]
	}
	return true
}

func (h *History) save() error {
	f, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, cmd := range h.commands {
		if _, err := fmt.Fprintln(w, cmd); err != nil {
			return err
		}
	}

	return w.Flush()
}

func (h *History) list(n int) []string {
	if n <= 0 || n > len(h.commands) {
		n = len(h.commands)
	}

	start := len(h.commands) - n
	return h.commands[start:]
}
