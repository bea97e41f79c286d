package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/exports"
	"air-relatorios/internal/metrics"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/report"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ComposerSource loads a campaign and prepares its report composer.
type ComposerSource interface {
	Composer(ctx context.Context, campaignID uuid.UUID, opts report.Options) (*report.Composer, error)
}

// Kind names one downloadable file.
type Kind string

const (
	KindCampaignCSV     Kind = "campaign_csv"
	KindBalizadoresCSV  Kind = "balizadores_csv"
	KindBalizadoresXLSX Kind = "balizadores_xlsx"
	KindPDF             Kind = "pdf"
)

var ErrUnknownKind = fmt.Errorf("unknown export kind: %w", domain.ErrBadInput)

// File is a rendered export ready to be served.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

type ExportsProcessor struct {
	source ComposerSource
	logger *observability.Logger
}

func New(source ComposerSource, logger *observability.Logger) ExportsProcessor {
	return ExportsProcessor{
		source: source,
		logger: logger,
	}
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCampaignCSV, KindBalizadoresCSV, KindBalizadoresXLSX, KindPDF:
		return k, nil
	}
	return "", ErrUnknownKind
}

// Export renders kind for the campaign under opts. PDF exports render the
// pages in allowed (nil means all).
func (p *ExportsProcessor) Export(ctx context.Context, campaignID uuid.UUID, kind Kind, opts report.Options, allowed []string) (File, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "export_kind", Value: string(kind)},
	)

	c, err := p.source.Composer(ctx, campaignID, opts)
	if err != nil {
		return File{}, err
	}
	header := c.Header()
	proj := c.Projection()
	base := fileStem(header.Title)

	var buf bytes.Buffer
	var file File
	switch kind {
	case KindCampaignCSV:
		err = exports.WriteCampaignCSV(&buf, header.Title, metrics.Posts(proj))
		file = File{Name: base + "-campanha.csv", ContentType: "text/csv; charset=utf-8"}
	case KindBalizadoresCSV:
		err = exports.WriteBalizadoresCSV(&buf, metrics.Influencers(proj))
		file = File{Name: base + "-balizadores.csv", ContentType: "text/csv; charset=utf-8"}
	case KindBalizadoresXLSX:
		err = exports.WriteBalizadoresXLSX(&buf, header.Title, metrics.Influencers(proj), metrics.Summarize(proj))
		file = File{Name: base + "-balizadores.xlsx", ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}
	case KindPDF:
		var pages []report.Payload
		pages, err = c.ComposeAll(allowed)
		if err == nil {
			err = exports.WritePDF(&buf, pages)
		}
		file = File{Name: base + "-relatorio.pdf", ContentType: "application/pdf"}
	default:
		return File{}, ErrUnknownKind
	}
	if err != nil {
		p.logger.Error(ctx, "failed to render export", err)
		return File{}, err
	}

	file.Body = buf.Bytes()
	p.logger.Info(ctx, "export rendered", observability.Field{Key: "bytes", Value: len(file.Body)})
	return file, nil
}

// fileStem turns a campaign name into a download-safe file name stem.
func fileStem(title string) string {
	plain, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		plain = title
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	stem := strings.TrimSuffix(b.String(), "-")
	if stem == "" {
		return "campanha"
	}
	return stem
}
