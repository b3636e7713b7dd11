package service

import (
	"github.com/MKhiriev/nft-creator/internal/adapter"
	"github.com/MKhiriev/nft-creator/internal/compositor"
)

type ClientServices struct {
	MintService ClientMintService
}

func NewClientServices(c compositor.Compositor, mintAPI adapter.MintAPIAdapter) *ClientServices {
	return &ClientServices{
		MintService: NewClientMintService(c, mintAPI),
	}
}
