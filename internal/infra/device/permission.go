package device

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"afrimart/internal/domain/entity"
	"afrimart/internal/domain/service"

	"github.com/pkg/errors"
)

// PermissionKey is the state file key holding the user's location decision.
const PermissionKey = "location_permission"

// Terminal is the console the consent prompt talks to.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// PromptPermissionService is the permission API of the terminal device. The
// decision is asked once and kept in the state file; only the settings
// surface can change it afterwards.
type PromptPermissionService struct {
	state *StateFile
	in    *bufio.Reader
	out   io.Writer
}

// NewPromptPermissionService creates the terminal permission service.
func NewPromptPermissionService(state *StateFile, term Terminal) *PromptPermissionService {
	return &PromptPermissionService{
		state: state,
		in:    bufio.NewReader(term.In),
		out:   term.Out,
	}
}

// AsPermissionService exposes the prompt as the domain PermissionService.
func AsPermissionService(p *PromptPermissionService) service.PermissionService {
	return p
}

func (p *PromptPermissionService) Check(ctx context.Context) (entity.PermissionState, error) {
	raw, err := p.state.GetString(ctx, PermissionKey)
	if err != nil {
		return entity.PermissionUnknown, err
	}

	state := entity.PermissionState(raw)
	if !state.IsValid() {
		return entity.PermissionUnknown, nil
	}

	return state, nil
}

// Request prompts only while undetermined, like the OS dialog.
func (p *PromptPermissionService) Request(ctx context.Context) (entity.PermissionState, error) {
	current, err := p.Check(ctx)
	if err != nil {
		return entity.PermissionUnknown, err
	}
	if current != entity.PermissionUnknown {
		return current, nil
	}

	granted, err := p.ask(ctx, "Allow afrimart to use this device's location? [y/N] ")
	if err != nil {
		return entity.PermissionUnknown, err
	}

	return p.store(ctx, granted)
}

// OpenSettings shows the location setting and lets the user flip it.
func (p *PromptPermissionService) OpenSettings(ctx context.Context) error {
	current, err := p.Check(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Settings > Location: access is %s.\n", current)

	granted, err := p.ask(ctx, "Allow location access? [y/N] ")
	if err != nil {
		return err
	}

	_, err = p.store(ctx, granted)

	return err
}

func (p *PromptPermissionService) store(ctx context.Context, granted bool) (entity.PermissionState, error) {
	state := entity.PermissionDenied
	if granted {
		state = entity.PermissionGranted
	}

	if err := p.state.SetString(ctx, PermissionKey, state.String()); err != nil {
		return entity.PermissionUnknown, err
	}

	return state, nil
}

func (p *PromptPermissionService) ask(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Wrap(err, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
