package calculator

import (
	"fmt"

	"gopkg.in/ini.v1"
)

type Config struct {
	Server    ServerCfg
	Defaults  InputCfg
	Exchanger Exchanger
}

type ServerCfg struct {
	Addr        string
	HistorySize int
	LogLevel    string
}

// InputCfg 前端表单的默认输入值
type InputCfg struct {
	U       float64
	Area    float64
	DeltaT1 float64
	DeltaT2 float64
}

// LoadConfig reads an ini file; keys that are absent or unparsable fall back
// to the DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	return loadCfg(file), nil
}

func DefaultConfig() Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) Config {
	server := file.Section("server")
	calc := file.Section("calculator")
	hx := file.Section("exchanger")
	tube := DefaultTubeGeometry()
	return Config{
		Server: ServerCfg{
			Addr:        server.Key("Addr").MustString(":9000"),
			HistorySize: server.Key("HistorySize").MustInt(20),
			LogLevel:    server.Key("LogLevel").MustString("info"),
		},
		Defaults: InputCfg{
			U:       calc.Key("U").MustFloat64(500),
			Area:    calc.Key("Area").MustFloat64(10),
			DeltaT1: calc.Key("DeltaT1").MustFloat64(30),
			DeltaT2: calc.Key("DeltaT2").MustFloat64(20),
		},
		Exchanger: Exchanger{
			HTCExternal:      hx.Key("HTCExternal").MustFloat64(100),
			HTCInternal:      hx.Key("HTCInternal").MustFloat64(200),
			WallConductivity: hx.Key("WallConductivity").MustFloat64(16),
			Tube: TubeGeometry{
				Length:        hx.Key("TubeLength").MustFloat64(tube.Length),
				OuterDiameter: hx.Key("TubeOuterDiameter").MustFloat64(tube.OuterDiameter),
				InnerDiameter: hx.Key("TubeInnerDiameter").MustFloat64(tube.InnerDiameter),
			},
		},
	}
}
