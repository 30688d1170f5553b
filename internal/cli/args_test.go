package cli

import (
	"reflect"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	commands := []string{"ddg", "serper", "key"}

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"modern", []string{"ddg", "--name", "Acme"}, []string{"ddg", "--name", "Acme"}},
		{"legacy with command", []string{"ddg", "-Name", "Acme"}, []string{"ddg", "--name", "Acme"}},
		{"legacy bare", []string{"-Name", "Acme Corp"}, []string{"ddg", "--name", "Acme Corp"}},
		{"legacy equals", []string{"-Name=Acme"}, []string{"ddg", "--name=Acme"}},
		{"legacy after global flag", []string{"-v", "ddg", "-Name", "Acme"}, []string{"-v", "ddg", "--name", "Acme"}},
		{"company named like a command", []string{"-Name", "key"}, []string{"ddg", "--name", "key"}},
		{"terminator", []string{"ddg", "--", "-Name"}, []string{"ddg", "--", "-Name"}},
		{"serper untouched", []string{"serper", "-q", "acme.io"}, []string{"serper", "-q", "acme.io"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeArgs(tt.in, commands); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeArgs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
