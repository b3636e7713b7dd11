package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/mock"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/internal/validators"
	"github.com/MKhiriev/nft-creator/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const testAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

var (
	testBackgrounds = []string{"assets/bg1.png", "assets/bg2.png", "assets/bg3.png"}
	testShapes      = []string{"assets/shape1.png", "assets/shape2.png"}
)

func newTestModel(t *testing.T, address string) (mintModel, *mock.MockClientMintService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientMintService(ctrl)
	svc.EXPECT().Backgrounds().Return(testBackgrounds).AnyTimes()
	svc.EXPECT().Shapes().Return(testShapes).AnyTimes()

	info := models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123")
	return newMintModel(context.Background(), svc, info, address, logger.Nop()), svc
}

func press(t *testing.T, m mintModel, k tea.KeyMsg) (mintModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	updated, ok := next.(mintModel)
	require.True(t, ok)
	return updated, cmd
}

func send(t *testing.T, m mintModel, msg tea.Msg) mintModel {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(mintModel)
	require.True(t, ok)
	return updated
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// readyModel returns a model with every field filled in and the mint
// button focused.
func readyModel(t *testing.T) (mintModel, *mock.MockClientMintService) {
	t.Helper()

	m, svc := newTestModel(t, testAddress)
	m.name.SetValue("Blue circle")
	m.focus = focusMint
	return m, svc
}

// ── focus ─────────────────────────────────────────────────────────────────────

func TestMintModel_FocusCycles(t *testing.T) {
	m, _ := newTestModel(t, "")
	require.Equal(t, focusAddress, m.focus)

	want := []focusField{focusBackground, focusShape, focusName, focusMint, focusAddress}
	for _, f := range want {
		m, _ = press(t, m, keyTab)
		assert.Equal(t, f, m.focus)
	}

	m, _ = press(t, m, keyShiftTab)
	assert.Equal(t, focusMint, m.focus)
}

func TestMintModel_EnterAdvancesFocusBeforeButton(t *testing.T) {
	m, _ := newTestModel(t, testAddress)

	m, _ = press(t, m, keyEnter)
	assert.Equal(t, focusBackground, m.focus)
	assert.False(t, m.minting)
	assert.Empty(t, m.errMsg)
}

func TestMintModel_LeavingInvalidAddressWarns(t *testing.T) {
	m, _ := newTestModel(t, "0xabc")

	m, _ = press(t, m, keyTab)

	assert.Equal(t, focusBackground, m.focus)
	assert.Equal(t, validators.ErrInvalidWalletAddress.Error(), m.errMsg)
}

func TestMintModel_InvalidAddressIsNotSubmitted(t *testing.T) {
	m, _ := newTestModel(t, "0xabc")
	m.name.SetValue("Blue circle")
	m.focus = focusMint

	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.False(t, m.minting)
	assert.Equal(t, validators.ErrInvalidWalletAddress.Error(), m.errMsg)
}

// ── pickers ───────────────────────────────────────────────────────────────────

func TestMintModel_PickersWrapAndRequestPreview(t *testing.T) {
	m, svc := newTestModel(t, "")
	m.focus = focusBackground

	m, cmd := press(t, m, keyLeft)
	assert.Equal(t, "assets/bg3.png", m.background.selected())
	require.NotNil(t, cmd)

	svc.EXPECT().
		Preview(models.MintDraft{Background: "assets/bg3.png", Shape: "assets/shape1.png"}).
		Return(make([]byte, 2048), nil)

	m = send(t, m, cmd())
	assert.Equal(t, 2048, m.previewSize)

	m.focus = focusShape
	m, _ = press(t, m, keyRight)
	m, _ = press(t, m, keyRight)
	assert.Equal(t, "assets/shape1.png", m.shape.selected())
}

func TestMintModel_ArrowsInTextFieldDoNotPick(t *testing.T) {
	m, _ := newTestModel(t, "0xabc")

	m, _ = press(t, m, keyRight)
	assert.Equal(t, "assets/bg1.png", m.background.selected())
}

// ── mint ──────────────────────────────────────────────────────────────────────

func TestMintModel_IncompleteDraftIsNotSubmitted(t *testing.T) {
	m, _ := newTestModel(t, "")
	m.name.SetValue("Blue circle")
	m.focus = focusMint

	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.False(t, m.minting)
	assert.NotEmpty(t, m.errMsg)
}

func TestMintModel_SubmitSuccess(t *testing.T) {
	m, svc := readyModel(t)

	m, cmd := press(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.minting)
	assert.Contains(t, m.View(), "Minting...")

	// a second press while in flight does nothing
	m, again := press(t, m, keyEnter)
	assert.Nil(t, again)
	assert.True(t, m.minting)

	draft := models.MintDraft{
		Background: "assets/bg1.png",
		Shape:      "assets/shape1.png",
		Name:       "Blue circle",
		Address:    testAddress,
	}
	result := models.MintResult{Raw: []byte(`{"result":{"queueId":"q-1"}}`), QueueID: "q-1"}
	svc.EXPECT().Mint(gomock.Any(), draft).Return(result, nil)

	m = send(t, m, m.cmdMint(m.draft())())

	assert.False(t, m.minting)
	require.NotNil(t, m.result)
	assert.Equal(t, "q-1", m.result.QueueID)
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.View(), "Queue id: q-1")
}

func TestMintModel_SubmitFailure(t *testing.T) {
	m, svc := readyModel(t)
	m, _ = press(t, m, keyEnter)

	svc.EXPECT().Mint(gomock.Any(), gomock.Any()).Return(models.MintResult{}, errors.New("dial tcp 127.0.0.1:8080: connection refused"))

	m = send(t, m, m.cmdMint(m.draft())())

	assert.False(t, m.minting)
	assert.Nil(t, m.result)
	assert.Equal(t, "Network is down or the server is unavailable", m.errMsg)
}

// ── clipboard ─────────────────────────────────────────────────────────────────

func TestMintModel_CopyQueueID(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, _ := readyModel(t)
	m.result = &models.MintResult{QueueID: "q-42"}

	m, cmd := press(t, m, runes("c"))
	require.NotNil(t, cmd)

	m = send(t, m, cmd())
	assert.Equal(t, "q-42", copied)
	assert.Equal(t, "Queue id copied to clipboard", m.status)

	m = send(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestMintModel_CopyWithoutResult(t *testing.T) {
	m, _ := readyModel(t)

	m, _ = press(t, m, runes("c"))
	assert.Equal(t, "Nothing to copy yet", m.status)
}

func TestMintModel_TypingCInNameField(t *testing.T) {
	m, _ := newTestModel(t, "0xabc")
	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyTab)
	require.Equal(t, focusName, m.focus)

	m, _ = press(t, m, runes("c"))
	assert.Equal(t, "c", m.name.Value())
	assert.Empty(t, m.status)
}

// ── build info ────────────────────────────────────────────────────────────────

func TestMintModel_BuildInfoToggle(t *testing.T) {
	m, _ := readyModel(t)
	m = send(t, m, serverVersionMsg{version: "2.0.0"})

	m, _ = press(t, m, runes("v"))
	require.True(t, m.showBuildInfo)

	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: abc123")
	assert.Contains(t, view, "Server version: 2.0.0")

	m, _ = press(t, m, keyEsc)
	assert.False(t, m.showBuildInfo)
}

func TestMintModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, "")

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── errors ────────────────────────────────────────────────────────────────────

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "", humanizeError(nil))
	assert.Equal(t, "A mint is already in progress", humanizeError(service.ErrMintInFlight))
	assert.Equal(t, "plain", humanizeError(errors.New("plain")))
}
