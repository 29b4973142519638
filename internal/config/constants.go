// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "roadmap-progress"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultEnv                   = "production"
	DefaultServerPort            = ":8080"
	DefaultShutdownTimeout       = 10 * time.Second
	DefaultLogLevel              = "info"
	DefaultExecutorType          = "log"
	DefaultExecutorRunTimeout    = 5 * time.Second
	DefaultExecutorRatePerSecond = 5 // 公開Piston APIの制限に合わせる
	DefaultSubmissionTimeout     = 60 * time.Second
)
