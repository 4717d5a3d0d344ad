package config

import (
	"strings"

	"github.com/inkstone-im/pinwheel/internal/domain"
)

// Config is the root configuration. Contexts take an immutable snapshot of
// the derived option bitmask and simplified-mode flag at construction; later
// edits to the configuration never affect a live context.
type Config struct {
	Dict DictConfig `yaml:"dict"`
	Log  LogConfig  `yaml:"log"`
	IME  IMEConfig  `yaml:"ime"`
}

// DictConfig holds dictionary store settings.
type DictConfig struct {
	// MainDictPaths is a comma-separated ordered probe list; the first
	// openable file wins.
	MainDictPaths string `yaml:"main_dict_paths" env:"DICT_MAIN_PATHS" env-default:"/usr/share/pinwheel/db/main.db,main.db"`

	// UserDataDir receives the persisted user dictionary (user-1.0.db).
	UserDataDir string `yaml:"user_data_dir" env:"DICT_USER_DATA_DIR" env-default:".pinwheel"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// IMEConfig holds input-behaviour settings.
type IMEConfig struct {
	// Fuzzy is a comma-separated list of fuzzy directions, e.g.
	// "c_ch,ch_c,an_ang". Each direction is gated independently.
	Fuzzy string `yaml:"fuzzy" env:"IME_FUZZY" env-default:""`

	// IncompletePinyin lets bare initials match and enables the insert
	// fast path.
	IncompletePinyin bool `yaml:"incomplete_pinyin" env:"IME_INCOMPLETE_PINYIN" env-default:"true"`

	// ModeSimp selects simplified output; when false, candidates are
	// rendered through the traditional converter before display.
	ModeSimp bool `yaml:"mode_simp" env:"IME_MODE_SIMP" env-default:"true"`
}

// fuzzyNames maps configuration tokens to option bits.
var fuzzyNames = map[string]domain.Option{
	"c_ch":     domain.OptionFuzzyCCh,
	"ch_c":     domain.OptionFuzzyChC,
	"z_zh":     domain.OptionFuzzyZZh,
	"zh_z":     domain.OptionFuzzyZhZ,
	"s_sh":     domain.OptionFuzzySSh,
	"sh_s":     domain.OptionFuzzyShS,
	"l_n":      domain.OptionFuzzyLN,
	"n_l":      domain.OptionFuzzyNL,
	"f_h":      domain.OptionFuzzyFH,
	"h_f":      domain.OptionFuzzyHF,
	"l_r":      domain.OptionFuzzyLR,
	"r_l":      domain.OptionFuzzyRL,
	"k_g":      domain.OptionFuzzyKG,
	"g_k":      domain.OptionFuzzyGK,
	"an_ang":   domain.OptionFuzzyAnAng,
	"ang_an":   domain.OptionFuzzyAngAn,
	"en_eng":   domain.OptionFuzzyEnEng,
	"eng_en":   domain.OptionFuzzyEngEn,
	"in_ing":   domain.OptionFuzzyInIng,
	"ing_in":   domain.OptionFuzzyIngIn,
	"ian_iang": domain.OptionFuzzyIanIang,
	"iang_ian": domain.OptionFuzzyIangIan,
	"uan_uang": domain.OptionFuzzyUanUang,
	"uang_uan": domain.OptionFuzzyUangUan,
	"all":      domain.OptionFuzzyAll,
}

// Option converts the IME settings into the domain option bitmask.
func (c IMEConfig) Option() domain.Option {
	var opt domain.Option
	for _, tok := range strings.Split(c.Fuzzy, ",") {
		tok = strings.TrimSpace(strings.ToLower(tok))
		if tok == "" {
			continue
		}
		opt |= fuzzyNames[tok]
	}
	if c.IncompletePinyin {
		opt |= domain.OptionIncompletePinyin
	}
	return opt
}

// MainDictPathList splits the probe list, dropping empty entries.
func (c DictConfig) MainDictPathList() []string {
	var paths []string
	for _, p := range strings.Split(c.MainDictPaths, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
