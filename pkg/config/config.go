package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/jhoicas/xero-gateway/pkg/xero"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	Gateway GatewayConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel y formato del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// GatewayConfig opciones del intercambio XML con el servicio contable.
type GatewayConfig struct {
	TaxTypesFile       string // YAML/JSON con la tabla de tipos de impuesto (vacío = tabla por defecto)
	SuppressLineAmount bool   // no enviar LineAmount en las líneas
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, XERO_TAX_TYPES_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "xero-gateway"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Gateway: GatewayConfig{
			TaxTypesFile:       getString(v, "XERO_TAX_TYPES_FILE", ""),
			SuppressLineAmount: getBool(v, "XERO_SUPPRESS_LINE_AMOUNT", false),
		},
	}
	return cfg, nil
}

// taxTypeEntry fila del archivo de tipos de impuesto. Se usa lista y no mapa
// porque Viper pasa las claves a minúsculas y los códigos van en mayúsculas.
type taxTypeEntry struct {
	Code        string `mapstructure:"code"`
	Description string `mapstructure:"description"`
}

// LoadTaxTypes lee la tabla de tipos de impuesto. Con path vacío devuelve la tabla por defecto.
//
//	tax_types:
//	  - code: OUTPUT
//	    description: Sales
func LoadTaxTypes(path string) (xero.TaxTypes, error) {
	if path == "" {
		return xero.DefaultTaxTypes, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: leer tipos de impuesto %s: %w", path, err)
	}
	var entries []taxTypeEntry
	if err := v.UnmarshalKey("tax_types", &entries); err != nil {
		return nil, fmt.Errorf("config: decodificar tipos de impuesto: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("config: %s no define tax_types", path)
	}
	out := make(xero.TaxTypes, len(entries))
	for i, e := range entries {
		code := strings.TrimSpace(e.Code)
		if code == "" {
			return nil, fmt.Errorf("config: tax_types[%d] sin código", i)
		}
		out[code] = e.Description
	}
	return out, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
