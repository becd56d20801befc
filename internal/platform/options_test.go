package platform

import (
	"testing"
	"time"
)

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if o.appName() != "easel" {
		t.Errorf("appName = %q", o.appName())
	}
	if o.timeout() != DefaultTimeout {
		t.Errorf("timeout = %v", o.timeout())
	}
	o = Options{AppName: "paint", Timeout: time.Second}
	if o.appName() != "paint" || o.timeout() != time.Second {
		t.Errorf("explicit options not kept: %+v", o)
	}
}
