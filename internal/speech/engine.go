package speech

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Engine synthesizes and plays one utterance, blocking until done.
type Engine interface {
	Speak(ctx context.Context, text string) error
}

// CommandEngine speaks by running a local TTS program such as espeak-ng or say.
type CommandEngine struct {
	Command string
	Voice   string
	Rate    int
}

// NewCommandEngine validates lang as a BCP 47 tag and derives the voice name
// passed to espeak-style programs.
func NewCommandEngine(command, lang string, rate int) (*CommandEngine, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, fmt.Errorf("speech command is empty")
	}
	voice, err := VoiceFor(lang)
	if err != nil {
		return nil, err
	}
	return &CommandEngine{Command: command, Voice: voice, Rate: rate}, nil
}

// VoiceFor maps a language tag to an espeak voice name, e.g. en-US -> en-us.
func VoiceFor(lang string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return "", fmt.Errorf("speech language %q: %w", lang, err)
	}
	base, _ := tag.Base()
	voice := base.String()
	if region, conf := tag.Region(); conf == language.Exact {
		voice += "-" + strings.ToLower(region.String())
	}
	return voice, nil
}

// Args returns the argument list for text.
func (e *CommandEngine) Args(text string) []string {
	var args []string
	switch filepath.Base(e.Command) {
	case "espeak", "espeak-ng":
		if e.Voice != "" {
			args = append(args, "-v", e.Voice)
		}
		if e.Rate > 0 {
			args = append(args, "-s", strconv.Itoa(e.Rate))
		}
		args = append(args, "--")
	case "say":
		if e.Rate > 0 {
			args = append(args, "-r", strconv.Itoa(e.Rate))
		}
		args = append(args, "--")
	}
	return append(args, text)
}

func (e *CommandEngine) Speak(ctx context.Context, text string) error {
	out, err := exec.CommandContext(ctx, e.Command, e.Args(text)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("run %s: %w: %s", e.Command, err, strings.TrimSpace(string(out)))
	}
	return nil
}
