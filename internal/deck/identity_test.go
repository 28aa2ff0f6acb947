package deck

import "testing"

func TestHeroIdentity(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Mahina, a Guardiã", "Mahina"},
		{"MAHINA Desperta", "Mahina"},
		{"Otto", "Asmonious"},
		{"Otto, o Construtor", "Asmonious"},
		{"Asmonious", "Asmonious"},
		{"Vellret Sombrio", "Vellret"},
		{"Jenos Caído", "Jenos"},
		{"Jenos Senhor do Macroverso", "Jenos"},
		{"Kael-Thar o Andarilho", "Kael"},
		{"Solo", "Solo"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeroIdentity(tt.name); got != tt.want {
				t.Errorf("HeroIdentity(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
