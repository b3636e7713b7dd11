package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/internal/validators"
	"github.com/MKhiriev/nft-creator/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped in tests, where no clipboard is available.
var writeClipboard = clipboard.WriteAll

type focusField int

const (
	focusAddress focusField = iota
	focusBackground
	focusShape
	focusName
	focusMint

	focusCount
)

const resultPreviewWidth = 120

// mintModel is the only screen of the client.
type mintModel struct {
	ctx       context.Context
	svc       service.ClientMintService
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	address    textinput.Model
	name       textinput.Model
	background picker
	shape      picker
	focus      focusField

	spinner spinner.Model
	minting bool

	result      *models.MintResult
	errMsg      string
	status      string
	previewSize int

	serverVersion string
	showBuildInfo bool
}

func newMintModel(ctx context.Context, svc service.ClientMintService, buildInfo models.AppBuildInfo, address string, logger *logger.Logger) mintModel {
	addressInput := textinput.New()
	addressInput.Placeholder = "0x..."
	addressInput.CharLimit = 64
	addressInput.SetValue(address)

	nameInput := textinput.New()
	nameInput.Placeholder = "My NFT"
	nameInput.CharLimit = 128

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := mintModel{
		ctx:        ctx,
		svc:        svc,
		validator:  validators.NewMintDraftValidator(),
		buildInfo:  buildInfo,
		logger:     logger,
		address:    addressInput,
		name:       nameInput,
		background: newPicker("Background", svc.Backgrounds()),
		shape:      newPicker("Shape", svc.Shapes()),
		spinner:    s,
	}
	m.address.Focus()

	return m
}

func (m mintModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdPreview(), m.cmdServerVersion())
}

func (m mintModel) draft() models.MintDraft {
	return models.MintDraft{
		Background: m.background.selected(),
		Shape:      m.shape.selected(),
		Name:       strings.TrimSpace(m.name.Value()),
		Address:    strings.TrimSpace(m.address.Value()),
	}
}

func (m mintModel) canMint() bool {
	return !m.minting && m.draft().Complete()
}

func (m mintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case mintDoneMsg:
		m.minting = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("mint failed")
			m.result = nil
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.logger.Info().Str("queue_id", msg.result.QueueID).Msg("mint queued")
		m.result = &msg.result
		m.errMsg = ""
		return m, nil

	case previewMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.previewSize = msg.size
		return m, nil

	case serverVersionMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("server version is unavailable")
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Queue id copied to clipboard"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.minting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

func (m mintModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	textFocused := m.focus == focusAddress || m.focus == focusName

	switch {
	case key.Matches(msg, keys.tab, keys.down):
		return m.moveFocus(1)
	case key.Matches(msg, keys.backtab, keys.up):
		return m.moveFocus(-1)
	case key.Matches(msg, keys.enter):
		if m.focus == focusMint {
			return m.submit()
		}
		return m.moveFocus(1)
	case !textFocused && key.Matches(msg, keys.left):
		return m.pick(false)
	case !textFocused && key.Matches(msg, keys.right):
		return m.pick(true)
	case !textFocused && key.Matches(msg, keys.copy):
		return m.copyQueueID()
	case !textFocused && key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m mintModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusAddress:
		m.address, cmd = m.address.Update(msg)
	case focusName:
		m.name, cmd = m.name.Update(msg)
	}

	return m, cmd
}

func (m mintModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if m.focus == focusAddress && strings.TrimSpace(m.address.Value()) != "" {
		m.errMsg = ""
		if err := m.validator.Validate(m.ctx, m.draft(), validators.FieldAddress); err != nil {
			m.errMsg = humanizeError(err)
		}
	}

	m.focus = focusField((int(m.focus) + delta + int(focusCount)) % int(focusCount))

	m.address.Blur()
	m.name.Blur()

	var cmd tea.Cmd
	switch m.focus {
	case focusAddress:
		cmd = m.address.Focus()
	case focusName:
		cmd = m.name.Focus()
	}

	return m, cmd
}

func (m mintModel) pick(forward bool) (tea.Model, tea.Cmd) {
	var p *picker
	switch m.focus {
	case focusBackground:
		p = &m.background
	case focusShape:
		p = &m.shape
	default:
		return m, nil
	}

	if forward {
		p.next()
	} else {
		p.prev()
	}

	return m, m.cmdPreview()
}

func (m mintModel) submit() (tea.Model, tea.Cmd) {
	if m.minting {
		return m, nil
	}

	draft := m.draft()
	if err := m.validator.Validate(m.ctx, draft); err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}

	m.minting = true
	m.errMsg = ""
	m.result = nil

	return m, tea.Batch(m.spinner.Tick, m.cmdMint(draft))
}

func (m mintModel) copyQueueID() (tea.Model, tea.Cmd) {
	if m.result == nil || m.result.QueueID == "" {
		m.status = "Nothing to copy yet"
		return m, cmdClearStatus()
	}

	return m, cmdCopyToClipboard(m.result.QueueID)
}

func (m mintModel) cmdMint(draft models.MintDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	return func() tea.Msg {
		result, err := svc.Mint(ctx, draft)
		return mintDoneMsg{result: result, err: err}
	}
}

func (m mintModel) cmdPreview() tea.Cmd {
	draft := m.draft()
	svc := m.svc
	return func() tea.Msg {
		img, err := svc.Preview(draft)
		return previewMsg{size: len(img), err: err}
	}
}

func (m mintModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m mintModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	var b strings.Builder

	b.WriteString(m.label(focusAddress, "Wallet address"))
	b.WriteString(m.address.View())
	b.WriteString("\n\n")

	b.WriteString(m.label(focusBackground, m.background.label))
	b.WriteString(m.background.view(m.focus == focusBackground))
	b.WriteString("\n\n")

	b.WriteString(m.label(focusShape, m.shape.label))
	b.WriteString(m.shape.view(m.focus == focusShape))
	b.WriteString("\n\n")

	b.WriteString(m.label(focusName, "Name"))
	b.WriteString(m.name.View())
	b.WriteString("\n\n")

	b.WriteString(m.mintButton())
	b.WriteString("\n")

	if m.previewSize > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("image ready, %.1f KB", float64(m.previewSize)/1024)))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString("\n")
		line := "Minted."
		if m.result.QueueID != "" {
			line += " Queue id: " + m.result.QueueID
		}
		b.WriteString(successStyle.Render(line))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fitText(string(m.result.Raw), resultPreviewWidth)))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("NFT CREATOR", b.String(),
		"tab/shift+tab: move  ←/→: pick  enter: next / mint  c: copy queue id  v: about")
}

func (m mintModel) label(field focusField, text string) string {
	if m.focus == field {
		return focusedStyle.Render("> "+text) + "\n"
	}
	return "  " + text + "\n"
}

func (m mintModel) mintButton() string {
	switch {
	case m.minting:
		return disabledStyle.Render(buttonStyle.Render(m.spinner.View() + " Minting..."))
	case !m.canMint():
		return disabledStyle.Render(buttonStyle.Render("Mint"))
	case m.focus == focusMint:
		return focusedStyle.Render(buttonStyle.Render("Mint"))
	default:
		return buttonStyle.Render("Mint")
	}
}
