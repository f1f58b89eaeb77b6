package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(subdomain, tableSegment string) ([]byte, error)
}

// TableQRGenerator renders the PNG placed on a table: scanning it opens the
// guest menu for that table on the tenant's subdomain.
type TableQRGenerator struct {
	BaseDomain string
}

func (g TableQRGenerator) Generate(subdomain, tableSegment string) ([]byte, error) {
	link := fmt.Sprintf("https://%s.%s/%s/menu", subdomain, g.BaseDomain, tableSegment)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
