// Package export writes the landing page and its assets as static files.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/config"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/features"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/observability"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/templates/home"
	"github.com/enesgules/docusaurus-ai-search-upstash/public"
)

const staticPrefix = "/static/"

// ErrMissingAsset reports a page reference to a file absent from the asset tree.
var ErrMissingAsset = errors.New("export: missing asset")

// Options configures an export run.
type Options struct {
	OutDir   string
	Site     config.Site
	Features []features.Feature
	// Static is the asset tree served under /static/. Nil uses the embedded one.
	Static fs.FS
}

// Result lists what was written, relative to OutDir.
type Result struct {
	Files []string
}

// Run renders index.html without hover wiring, verifies that every /static/
// reference resolves, and copies the asset tree next to it.
func Run(ctx context.Context, opts Options) (Result, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return Result{}, errors.New("export: output directory is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	static := opts.Static
	if static == nil {
		embedded, err := public.StaticFS()
		if err != nil {
			return Result{}, fmt.Errorf("export: embed static: %w", err)
		}
		static = embedded
	}
	list := opts.Features
	if list == nil {
		list = features.List()
	}

	var page bytes.Buffer
	err := home.Page(home.Props{
		Site:     opts.Site,
		Features: list,
		Variant:  product.VariantDefault,
	}).Render(&page)
	if err != nil {
		return Result{}, fmt.Errorf("export: render page: %w", err)
	}

	refs, err := AssetRefs(bytes.NewReader(page.Bytes()))
	if err != nil {
		return Result{}, fmt.Errorf("export: scan page: %w", err)
	}
	if err := verify(static, refs); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("export: create output: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.OutDir, "index.html"), page.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("export: write index: %w", err)
	}
	result := Result{Files: []string{"index.html"}}

	copied, err := copyTree(ctx, static, filepath.Join(opts.OutDir, "static"))
	if err != nil {
		return Result{}, err
	}
	for _, name := range copied {
		result.Files = append(result.Files, path.Join("static", name))
	}

	observability.Logger(ctx).Info("export completed",
		zap.String("out_dir", opts.OutDir),
		zap.Int("files", len(result.Files)),
	)
	return result, nil
}

// AssetRefs returns the sorted, de-duplicated src and href values under
// /static/ found in an HTML document.
func AssetRefs(r io.Reader) ([]string, error) {
	seen := map[string]struct{}{}
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				out := make([]string, 0, len(seen))
				for ref := range seen {
					out = append(out, ref)
				}
				sort.Strings(out)
				return out, nil
			}
			return nil, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			for _, attr := range z.Token().Attr {
				if attr.Key != "src" && attr.Key != "href" {
					continue
				}
				if strings.HasPrefix(attr.Val, staticPrefix) {
					seen[attr.Val] = struct{}{}
				}
			}
		}
	}
}

func verify(static fs.FS, refs []string) error {
	var missing []string
	for _, ref := range refs {
		name := strings.TrimPrefix(ref, staticPrefix)
		if i := strings.IndexAny(name, "?#"); i >= 0 {
			name = name[:i]
		}
		info, err := fs.Stat(static, name)
		if err != nil || info.IsDir() {
			missing = append(missing, ref)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}
	return nil
}

func copyTree(ctx context.Context, src fs.FS, dst string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(src, name, target); err != nil {
			return err
		}
		copied = append(copied, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export: copy assets: %w", err)
	}
	return copied, nil
}

func copyFile(src fs.FS, name, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
