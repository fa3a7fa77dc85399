package email

import "testing"

func TestServiceIsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{
			name:     "empty config",
			config:   Config{},
			expected: false,
		},
		{
			name: "missing host",
			config: Config{
				Port: "587",
				From: "bot@example.com",
			},
			expected: false,
		},
		{
			name: "missing port",
			config: Config{
				Host: "smtp.example.com",
				From: "bot@example.com",
			},
			expected: false,
		},
		{
			name: "missing from",
			config: Config{
				Host: "smtp.example.com",
				Port: "587",
			},
			expected: false,
		},
		{
			name: "fully configured",
			config: Config{
				Host: "smtp.example.com",
				Port: "587",
				From: "bot@example.com",
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.config)
			if svc.IsConfigured() != tt.expected {
				t.Errorf("IsConfigured() = %v, want %v", svc.IsConfigured(), tt.expected)
			}
		})
	}
}

func TestSenderHeader(t *testing.T) {
	svc := NewService(Config{From: "bot@example.com"})
	if got := svc.sender(); got != "bot@example.com" {
		t.Errorf("sender() = %q", got)
	}

	svc = NewService(Config{From: "bot@example.com", FromName: "Tracker"})
	if got := svc.sender(); got != "Tracker <bot@example.com>" {
		t.Errorf("sender() = %q", got)
	}
}

func TestSendEmailUnconfigured(t *testing.T) {
	svc := NewService(Config{})
	if err := svc.SendEmail([]string{"user@mail.com"}, "subject", "body"); err == nil {
		t.Fatal("expected error when email is not configured")
	}
}
