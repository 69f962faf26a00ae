package resolve

import (
	"errors"
	"testing"

	"github.com/nao1215/routemap/internal/urlconf"
)

func entry(pattern, module, name string) urlconf.RouteEntry {
	return urlconf.RouteEntry{Pattern: pattern, ModuleName: module, HandlerName: name}
}

// TestTranslate tests framework to chi pattern translation.
func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		want    string
		wantErr error
	}{
		{name: "root", pattern: "", want: "/"},
		{name: "static path", pattern: "vendor/login/", want: "/vendor/login/"},
		{name: "int converter", pattern: "vendor/<int:pk>/", want: "/vendor/{pk:[0-9]+}/"},
		{name: "default converter", pattern: "<category_slug>/", want: "/{category_slug}/"},
		{name: "str converter", pattern: "search/<str:q>/", want: "/search/{q}/"},
		{name: "slug converter", pattern: "<slug:category>/<slug:product>/", want: "/{category:[-a-zA-Z0-9_]+}/{product:[-a-zA-Z0-9_]+}/"},
		{name: "uuid converter", pattern: "order/<uuid:id>/", want: "/order/{id:[0-9a-fA-F-]+}/"},
		{name: "trailing path converter", pattern: "media/<path:file>", want: "/media/*"},
		{name: "regex pattern", pattern: "^admin/$", wantErr: ErrRegexPattern},
		{name: "regex pattern below an include prefix", pattern: "vendor/^legacy/(?P<pk>[0-9]+)/$", wantErr: ErrRegexPattern},
		{name: "unknown converter", pattern: "<year:y>/", wantErr: ErrUnknownConverter},
		{name: "path converter in the middle", pattern: "<path:p>/edit/", wantErr: ErrPathNotLast},
		{name: "reserved character", pattern: "files/*/", wantErr: ErrReservedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := translate(tt.pattern)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.pattern != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.pattern)
			}
		})
	}
}

// TestResolver tests URL resolution.
func TestResolver(t *testing.T) {
	t.Parallel()

	entries := []urlconf.RouteEntry{
		entry("", "core.views", "home_view"),
		entry("vendor/<int:pk>/", "vendor.views", "vendor_view"),
		entry("vendor/<int:id>/", "vendor.views", "vendor_detail"),
		entry("vendor/login/", "vendor.views", "login_view"),
		entry("<slug:category_slug>/<slug:product_slug>/", "product.views", "product"),
		entry("media/<path:file>", "core.views", "media"),
		entry("^legacy/$", "core.views", "legacy"),
	}
	r := New(entries, nil)

	t.Run("registers every translatable route", func(t *testing.T) {
		t.Parallel()

		if r.Len() != 6 {
			t.Errorf("expected 6 routes, got %d", r.Len())
		}
		skipped := r.Skipped()
		if len(skipped) != 1 || !errors.Is(skipped[0].Err, ErrRegexPattern) {
			t.Errorf("expected the regex route to be skipped, got %+v", skipped)
		}
	})

	t.Run("resolves the root", func(t *testing.T) {
		t.Parallel()

		m, err := r.Resolve("/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Entry.View() != "core.views.home_view" {
			t.Errorf("expected home view, got %q", m.Entry.View())
		}
	})

	t.Run("captures int parameters and keeps the first route", func(t *testing.T) {
		t.Parallel()

		m, err := r.Resolve("/vendor/7/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Entry.HandlerName != "vendor_view" {
			t.Errorf("expected vendor_view, got %q", m.Entry.HandlerName)
		}
		if m.Params["pk"] != "7" {
			t.Errorf("expected pk=7, got %v", m.Params)
		}
	})

	t.Run("later static route matches when earlier parameters do not", func(t *testing.T) {
		t.Parallel()

		m, err := r.Resolve("vendor/login/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Entry.HandlerName != "login_view" {
			t.Errorf("expected login_view, got %q", m.Entry.HandlerName)
		}
	})

	t.Run("captures slug parameters", func(t *testing.T) {
		t.Parallel()

		m, err := r.Resolve("/shoes/red-sneaker_2/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Params["category_slug"] != "shoes" || m.Params["product_slug"] != "red-sneaker_2" {
			t.Errorf("unexpected params: %v", m.Params)
		}
	})

	t.Run("names the trailing path parameter", func(t *testing.T) {
		t.Parallel()

		m, err := r.Resolve("/media/uploads/2024/logo.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Params["file"] != "uploads/2024/logo.png" {
			t.Errorf("expected file param, got %v", m.Params)
		}
	})

	t.Run("keeps the first of two identical patterns", func(t *testing.T) {
		t.Parallel()

		m, err := r.Resolve("/vendor/12/")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Entry.HandlerName != "vendor_view" || m.Params["id"] != "" {
			t.Errorf("expected vendor_view with pk, got %q %v", m.Entry.HandlerName, m.Params)
		}
	})

	t.Run("unmatched path returns ErrNoMatch", func(t *testing.T) {
		t.Parallel()

		_, err := r.Resolve("/vendor/7")
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("expected ErrNoMatch, got %v", err)
		}
	})

	t.Run("converter mismatch returns ErrNoMatch", func(t *testing.T) {
		t.Parallel()

		_, err := r.Resolve("/vendor/abc/def/ghi/")
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("expected ErrNoMatch, got %v", err)
		}
	})
}

// TestResolverDeclarationOrder tests that the first declared match wins even
// when a later route is more specific.
func TestResolverDeclarationOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []urlconf.RouteEntry
		path    string
		want    string
	}{
		{
			name: "slug parameter declared before a static segment",
			entries: []urlconf.RouteEntry{
				entry("vendor/<slug:s>/", "vendor.views", "detail"),
				entry("vendor/new/", "vendor.views", "create"),
			},
			path: "/vendor/new/",
			want: "vendor.views.detail",
		},
		{
			name: "static segment declared before a slug parameter",
			entries: []urlconf.RouteEntry{
				entry("vendor/new/", "vendor.views", "create"),
				entry("vendor/<slug:s>/", "vendor.views", "detail"),
			},
			path: "/vendor/new/",
			want: "vendor.views.create",
		},
		{
			name: "catch-all path declared first",
			entries: []urlconf.RouteEntry{
				entry("<path:rest>", "pages.views", "flatpage"),
				entry("cart/", "cart.views", "cart_detail"),
			},
			path: "/cart/",
			want: "pages.views.flatpage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := New(tt.entries, nil).Resolve(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Entry.View() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, m.Entry.View())
			}
		})
	}
}
