package clisender

import (
	"context"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/orbitl2/operator/api"
	"github.com/orbitl2/operator/api/controllers"
	apiCore "github.com/orbitl2/operator/api/core"
	"github.com/orbitl2/operator/common"
	"github.com/orbitl2/operator/eth"
	senderCore "github.com/orbitl2/operator/ethsender/core"
	sendermanager "github.com/orbitl2/operator/ethsender/sender_manager"
	"github.com/orbitl2/operator/logger"
	"github.com/orbitl2/operator/queue"
	"github.com/orbitl2/operator/telemetry"
	"github.com/spf13/cobra"
)

var initParamsData = &initParams{}

func GetRunSenderCommand() *cobra.Command {
	senderCmd := &cobra.Command{
		Use:     "run-sender",
		Short:   "runs eth sender component",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	initParamsData.setFlags(senderCmd)

	return senderCmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return initParamsData.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config, err := common.LoadConfig[senderCore.AppConfig](initParamsData.config, "sender")
	if err != nil {
		outputter.SetError(err)
		return
	}

	loggerConfig := config.Logger
	if loggerConfig.LogFilePath != "" {
		loggerConfig.LogFilePath = path.Join(path.Dir(loggerConfig.LogFilePath), "sender.log")
	}

	appLogger, err := logger.NewLogger(loggerConfig)
	if err != nil {
		outputter.SetError(err)
		return
	}

	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	telemetryHandler := telemetry.NewTelemetry(config.Telemetry, appLogger.Named("TELEMETRY"))
	if err := telemetryHandler.Start(); err != nil {
		appLogger.Error("telemetry start failed", "err", err)
		outputter.SetError(err)

		return
	}

	defer telemetryHandler.Close(context.Background())

	wallet, err := eth.NewTxWallet(config.Sender.Node.SigningKey)
	if err != nil {
		appLogger.Error("wallet creation failed", "err", err)
		outputter.SetError(err)

		return
	}

	payloadQueue := queue.NewPayloadQueue()
	defer payloadQueue.Stop()

	submitter := eth.NewTxSubmitter(
		config.Sender.Node.NodeURL, wallet, appLogger.Named("TX_SUBMITTER"))

	senderManager, err := sendermanager.NewEthSenderManager(
		config, payloadQueue, submitter, appLogger)
	if err != nil {
		appLogger.Error("eth sender manager creation failed", "err", err)
		outputter.SetError(err)

		return
	}

	if err := senderManager.Start(); err != nil {
		appLogger.Error("eth sender manager start failed", "err", err)
		outputter.SetError(err)

		return
	}

	defer senderManager.Stop()

	apiServer, err := api.NewAPI(ctx, config.API, []apiCore.APIController{
		controllers.NewGasPriceController(
			senderManager.GasPriceAdjuster(), senderManager.Database(), appLogger.Named("API")),
	}, appLogger.Named("API"))
	if err != nil {
		appLogger.Error("api creation failed", "err", err)
		outputter.SetError(err)

		return
	}

	go apiServer.Start()

	defer apiServer.Dispose()

	signalChannel := make(chan os.Signal, 1)
	// Notify the signalChannel when the interrupt signal is received (Ctrl+C)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel

	outputter.SetCommandResult(&CmdResult{})
}

type CmdResult struct{}

var _ common.ICommandResult = (*CmdResult)(nil)

func (r CmdResult) GetOutput() string {
	return "eth sender stopped"
}
