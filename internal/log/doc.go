// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// routemap logs the settings it loads and the routes it resolves at debug
// level. Settings modules carry credentials, so the SecureHandler masks:
//   - settings such as SECRET_KEY, EMAIL_HOST_PASSWORD and STRIPE_SECRET_KEY
//   - values that look like generated secret keys, Stripe keys or tokens
//   - any key containing password, secret, token, auth, credential or private
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("settings loaded", "settings", set)
//	slog.SetDefault(logger)
package log
