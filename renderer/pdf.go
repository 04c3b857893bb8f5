package renderer

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"vehicle-wrangler/utils"
)

// PDFRenderer prints an HTML report to PDF with headless Chrome
type PDFRenderer struct {
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	logger       *utils.Logger
}

// NewPDFRenderer creates a new PDFRenderer
func NewPDFRenderer(timeout time.Duration, maxRetries int, retryBackoff time.Duration, logger *utils.Logger) *PDFRenderer {
	return &PDFRenderer{
		timeout:      timeout,
		maxRetries:   maxRetries,
		retryBackoff: retryBackoff,
		logger:       logger,
	}
}

// newContext creates a fresh chromedp context (one browser, one tab)
func (r *PDFRenderer) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("allow-file-access-from-files", true),
		chromedp.Flag("log-level", "3"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// fileURL turns a local path into a file:// URL Chrome can navigate to
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// Render prints htmlPath to pdfPath, retrying with backoff when Chrome fails
func (r *PDFRenderer) Render(ctx context.Context, htmlPath, pdfPath string) error {
	target, err := fileURL(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to resolve report path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0755); err != nil {
		return fmt.Errorf("failed to create PDF directory: %w", err)
	}

	var buf []byte
	err = utils.RetryWithBackoff(ctx, r.maxRetries, r.retryBackoff, func() error {
		data, err := r.print(ctx, target)
		if err != nil {
			return err
		}
		buf = data
		return nil
	}, r.logger)
	if err != nil {
		return fmt.Errorf("PDF rendering failed: %w", err)
	}

	if err := os.WriteFile(pdfPath, buf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	r.logger.Info("PDF report written to: %s (%d bytes)", pdfPath, len(buf))
	return nil
}

func (r *PDFRenderer) print(parent context.Context, target string) ([]byte, error) {
	ctx, cancel := r.newContext(parent)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, r.timeout)
	defer cancelTimeout()

	var buf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
