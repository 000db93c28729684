package serve

import (
	"os"
	"os/signal"
	"syscall"

	cmdUtil "github.com/pg84s/loankv/cmd/util"
	"github.com/pg84s/loankv/lib/jsonlog"
	"github.com/pg84s/loankv/lib/store/memstore"
	"github.com/pg84s/loankv/rpc/common"
	"github.com/pg84s/loankv/rpc/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the loankv server",
		Long:    `Start the loankv server with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is LOANKV_<flag> (e.g. LOANKV_PORT=13000)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// add flags
	key := "host"
	ServeCmd.PersistentFlags().String(key, "0.0.0.0", cmdUtil.WrapString("The address to bind to"))

	key = "port"
	ServeCmd.PersistentFlags().Int(key, 13000, cmdUtil.WrapString("The port to listen on"))

	key = "log"
	ServeCmd.PersistentFlags().String(key, "server_logs.jsonl", cmdUtil.WrapString("Path to the JSON Lines audit log file. Every request/response exchange and every diagnostic event is appended there as one JSON object per line"))

	key = "idle-timeout"
	ServeCmd.PersistentFlags().Int64(key, 300, cmdUtil.WrapString("Idle timeout in seconds. A connection that sends no frame within this bound receives one error response and is closed"))

	key = "metrics-endpoint"
	ServeCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Optional address for a Prometheus metrics listener (e.g. 127.0.0.1:9090). Empty disables it"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which diagnostic logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	serveCmdConfig.Host = viper.GetString("host")
	serveCmdConfig.Port = viper.GetInt("port")
	serveCmdConfig.LogPath = viper.GetString("log")
	serveCmdConfig.IdleTimeoutSecond = viper.GetInt64("idle-timeout")
	serveCmdConfig.MetricsEndpoint = viper.GetString("metrics-endpoint")
	serveCmdConfig.LogLevel = viper.GetString("log-level")

	return common.InitLogger(serveCmdConfig.LogLevel)
}

// run starts the loankv server
func run(_ *cobra.Command, _ []string) error {
	logrus.Info(serveCmdConfig.String())

	// the audit log and the store are constructed once and shared by every
	// connection handler
	audit, err := jsonlog.New(serveCmdConfig.LogPath)
	if err != nil {
		return err
	}
	defer audit.Close()

	srv := server.NewServer(*serveCmdConfig, memstore.NewMemStore(), audit)

	// stop accepting on SIGINT/SIGTERM; in-flight connections drain
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logrus.Infof("received %s", sig)
		srv.Shutdown()
	}()

	return srv.ListenAndServe()
}
