package tui

import (
	"testing"

	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/mock"
	"github.com/MKhiriev/nft-creator/internal/service"
	"github.com/MKhiriev/nft-creator/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	info := models.NewAppBuildInfo("", "", "")

	_, err := New(nil, info, "", logger.Nop())
	assert.ErrorIs(t, err, ErrNoMintService)

	empty := mock.NewMockClientMintService(ctrl)
	empty.EXPECT().Backgrounds().Return(nil).AnyTimes()
	empty.EXPECT().Shapes().Return([]string{"shape1.png"}).AnyTimes()
	_, err = New(&service.ClientServices{MintService: empty}, info, "", logger.Nop())
	assert.ErrorIs(t, err, ErrNoAssets)

	full := mock.NewMockClientMintService(ctrl)
	full.EXPECT().Backgrounds().Return([]string{"bg1.png"}).AnyTimes()
	full.EXPECT().Shapes().Return([]string{"shape1.png"}).AnyTimes()
	ui, err := New(&service.ClientServices{MintService: full}, info, "0xabc", logger.Nop())
	assert.NoError(t, err)
	assert.Equal(t, "0xabc", ui.address)
}

func TestPicker(t *testing.T) {
	p := newPicker("Shape", []string{"a/shape1.png", "a/shape2.png"})
	assert.Equal(t, "a/shape1.png", p.selected())

	p.prev()
	assert.Equal(t, "a/shape2.png", p.selected())
	p.next()
	assert.Equal(t, "a/shape1.png", p.selected())

	assert.Contains(t, p.view(false), "[shape1]")

	var empty picker
	empty.next()
	assert.Equal(t, "", empty.selected())
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
