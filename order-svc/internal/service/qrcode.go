package service

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

var ErrEmptyLink = errors.New("nothing to encode")

type QRGenerator interface {
	Encode(link string) ([]byte, error)
}

// DeepLinkQR renders a deep link as a PNG so a phone camera can open it.
type DeepLinkQR struct {
	Size int
}

func (g DeepLinkQR) Encode(link string) ([]byte, error) {
	if link == "" {
		return nil, ErrEmptyLink
	}
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(link, qrcode.Medium, size)
}
