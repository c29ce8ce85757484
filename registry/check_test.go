package registry

import "testing"

func TestCheckKindFor(t *testing.T) {
	tests := []struct {
		protocol string
		want     CheckKind
	}{
		{"jsonrpc-http", CheckHTTP},
		{"jsonrpc", CheckTCP},
		{"jsonrpc-tcp-length-check", CheckTCP},
		{"multiplex.default", CheckTCP},
		{"grpc", CheckNone},
		{"", CheckNone},
	}
	for _, tc := range tests {
		t.Run(tc.protocol, func(t *testing.T) {
			if got := CheckKindFor(tc.protocol); got != tc.want {
				t.Errorf("CheckKindFor(%q) = %q, want %q", tc.protocol, got, tc.want)
			}
		})
	}
}

func TestBuildCheck(t *testing.T) {
	cfg := CheckConfig{Interval: "1s", DeregisterCriticalServiceAfter: "90m"}

	t.Run("http", func(t *testing.T) {
		check := buildCheck("jsonrpc-http", "10.0.0.5", 9000, cfg)
		if check == nil {
			t.Fatal("expected a check definition")
		}
		if check.HTTP != "http://10.0.0.5:9000/" {
			t.Errorf("HTTP = %q", check.HTTP)
		}
		if check.TCP != "" {
			t.Errorf("TCP should be empty, got %q", check.TCP)
		}
		if check.Interval != "1s" || check.DeregisterCriticalServiceAfter != "90m" {
			t.Errorf("settings = %+v", check)
		}
	})

	t.Run("tcp", func(t *testing.T) {
		check := buildCheck("jsonrpc", "10.0.0.5", 9000, cfg)
		if check == nil {
			t.Fatal("expected a check definition")
		}
		if check.TCP != "10.0.0.5:9000" {
			t.Errorf("TCP = %q", check.TCP)
		}
		if check.HTTP != "" {
			t.Errorf("HTTP should be empty, got %q", check.HTTP)
		}
	})

	t.Run("unknown protocol registers without a check", func(t *testing.T) {
		if check := buildCheck("grpc", "10.0.0.5", 9000, cfg); check != nil {
			t.Errorf("expected nil check, got %+v", check)
		}
	})
}
