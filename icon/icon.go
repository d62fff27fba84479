// Package icon holds the embedded system tray icon.
package icon

import _ "embed"

//go:embed icon.png
var Data []byte
