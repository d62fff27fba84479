//go:build linux

package linux

import (
	"testing"

	"github.com/m-mizutani/gt"
)

func TestBackdropImageProperties(t *testing.T) {
	list := `/backdrop/screen0/monitorHDMI-1/workspace0/color-style
/backdrop/screen0/monitorHDMI-1/workspace0/last-image
/backdrop/screen0/monitorVGA-1/workspace0/image-path
/backdrop/screen0/monitorVGA-1/workspace0/image-style
`
	props := backdropImageProperties(list)
	gt.Number(t, len(props)).Equal(2)
	gt.Value(t, props[0]).Equal("/backdrop/screen0/monitorHDMI-1/workspace0/last-image")
	gt.Value(t, props[1]).Equal("/backdrop/screen0/monitorVGA-1/workspace0/image-path")
}

func TestBackdropImagePropertiesEmpty(t *testing.T) {
	props := backdropImageProperties("/backdrop/screen0/monitor0/image-style\n")
	gt.Number(t, len(props)).Equal(0)
}
