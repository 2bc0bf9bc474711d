package i18n

import (
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// EnvLang forces the UI language when no config override is set.
const EnvLang = "STOPWATCH_LANG"

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
		"de": "Start",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
		"de": "Stopp",
	},
	"Reset": {
		"pt": "Zerar",
		"es": "Reiniciar",
		"ru": "Сброс",
		"de": "Zurücksetzen",
	},
	"Stopwatch": {
		"pt": "Cronômetro",
		"es": "Cronómetro",
		"ru": "Секундомер",
		"de": "Stoppuhr",
	},
	"Running": {
		"pt": "Contando",
		"es": "En marcha",
		"ru": "Идёт",
		"de": "Läuft",
	},
	"Stopped": {
		"pt": "Parado",
		"es": "Detenido",
		"ru": "Остановлен",
		"de": "Angehalten",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
		"de": "Beenden",
	},
}

type Translator struct {
	lang string
}

func New(lang string) *Translator {
	return &Translator{lang: Normalize(lang)}
}

// Detect picks a language from override, then STOPWATCH_LANG, then the
// system locale, defaulting to English.
func Detect(override string) *Translator {
	if lang := strings.TrimSpace(override); lang != "" {
		return New(lang)
	}
	if lang := strings.TrimSpace(os.Getenv(EnvLang)); lang != "" {
		return New(lang)
	}
	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		return New("en")
	}
	return New(userLocales[0])
}

// Normalize reduces a locale such as "pt_BR.UTF-8" or "es-MX" to its
// language code.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_."); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" {
		return "en"
	}
	return tag
}

func (t *Translator) T(key string) string {
	if translated, ok := translations[key][t.lang]; ok {
		return translated
	}
	return key
}

func (t *Translator) Lang() string {
	return t.lang
}
