package config_parser

import (
	"os"

	"github.com/branchctx/prcontext/config"
)

// OutputDirEnv overrides the default report directory when set.
const OutputDirEnv = "PRCONTEXT_OUTPUT_DIR"

type envSource struct{}

func NewEnvSource() *envSource {
	return &envSource{}
}

func (s *envSource) Load(cfg interface{}) {
	userCfg := cfg.(*config.UserConfig)
	if dir := os.Getenv(OutputDirEnv); dir != "" {
		userCfg.OutputDir = dir
	}
}
