package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeFile writes content to root/rel, creating directories as needed.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// writeShopProject creates a small multivendor site below a temp directory
// and returns its root.
func writeShopProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, root, "shop/settings.yaml", `secret_key: "django-insecure-7f3kq"
stripe_secret_key: "sk_test_abc123"
root_urlconf: shop.urls
static_url: /static/
installed_apps:
  - django.contrib.admin
  - core
  - vendor
  - cart
`)
	writeFile(t, root, "shop/urls.yaml", `urlpatterns:
  - path: ""
    view: core.views.home_view
    name: home
  - path: admin/
    patterns:
      - path: ""
        view: django.contrib.admin.sites.index
  - path: vendor/
    include: vendor.urls
  - path: cart/
    view: cart.views.cart_detail
`)
	writeFile(t, root, "vendor/urls.yaml", `urlpatterns:
  - path: become-vendor/
    view: vendor.views.become_vendor
  - path: <int:pk>/
    view: vendor.views.vendor_view
`)
	writeFile(t, root, "core/templates/home.html", `<html>
<link href="/static/css/main.css" rel="stylesheet">
<script src='/static/js/cart.js'></script>
</html>`)
	writeFile(t, root, "templates/vendor/become_vendor.html", `{% extends "base.html" %}`)
	return root
}

// runCommand executes the root command with args and returns stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
