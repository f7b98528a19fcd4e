package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/common"
	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/stake"
)

func jsonprint(a any) {
	bz, _ := json.MarshalIndent(a, "", "  ")
	fmt.Println(string(bz))
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Fatal("[MAIN] Invalid path: ", err)
	}
	return abs
}

func mustSigner() common.Signer {
	signer, err := app.CreateWalletSigner()
	if err != nil {
		log.Fatal("[MAIN] ", err)
	}
	return signer
}

func CmdRoot() *cobra.Command {
	var configPath, envPath string

	cmd := &cobra.Command{
		Use:          "kat-staking",
		Short:        "Mint from the candy machine and stake into the gem bank",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetFormatter(&log.TextFormatter{
				FullTimestamp: true,
			})
			app.InitConfig(absPath(configPath), absPath(envPath))
			app.InitLogger()
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the yaml config file")
	cmd.PersistentFlags().StringVar(&envPath, "env", "", "path to a .env file")

	cmd.AddCommand(CmdServe())
	cmd.AddCommand(CmdView())
	cmd.AddCommand(CmdStake())
	cmd.AddCommand(CmdUnstake())
	cmd.AddCommand(CmdCreateVault())
	cmd.AddCommand(CmdMint())
	cmd.AddCommand(CmdHistory())
	cmd.AddCommand(CmdAddress())
	return cmd
}

func CmdServe() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the mint poller, health checks and the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serve()
			return nil
		},
	}
}

func serve() {
	app.InitDB()

	signer := mustSigner()
	defer signer.Destroy()

	healthcheck := app.NewHealthCheck(signer.PublicKey().String())
	rt := NewRuntime(signer, LastServiceHealths(healthcheck))

	wallet := signer.PublicKey()
	if err := rt.Orchestrator.OnWalletChange(context.Background(), &wallet); err != nil {
		log.Warn("[MAIN] Initial reconciliation failed: ", err)
	}

	var wg sync.WaitGroup
	apiService := CreateAPIService(rt, healthcheck, &wg)
	healthService := app.NewHealthService(healthcheck, &wg)
	services := []app.Service{apiService, healthService}
	healthcheck.SetServices([]app.Service{rt.Poller, apiService, healthService})

	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}

	log.Info("[MAIN] Server started")

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Gracefully shutting down server...")
	for _, service := range services {
		service.Stop()
	}
	rt.Poller.Stop()
	wg.Wait()
	rt.Orchestrator.Wait()

	if app.DB != nil {
		if err := app.DB.Disconnect(); err != nil {
			log.Warn("[MAIN] Error disconnecting database: ", err)
		}
	}
	log.Info("[MAIN] Server stopped")
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}

// withRuntime connects wallet (the signer when nil) and runs fn against the
// reconciled state.
func withRuntime(ctx context.Context, wallet *solana.PublicKey, fn func(rt *Runtime) error) error {
	app.InitDB()

	signer := mustSigner()
	defer signer.Destroy()

	rt := NewRuntime(signer, nil)
	defer func() {
		rt.Poller.Stop()
		if app.DB != nil {
			_ = app.DB.Disconnect()
		}
	}()

	if wallet == nil {
		address := signer.PublicKey()
		wallet = &address
	}
	if err := rt.Orchestrator.OnWalletChange(ctx, wallet); err != nil {
		return fmt.Errorf("error loading wallet %s: %w", wallet, err)
	}
	return fn(rt)
}

func runAction(ctx context.Context, action func(rt *Runtime) stake.ActionResult) error {
	return withRuntime(ctx, nil, func(rt *Runtime) error {
		result := action(rt)
		jsonprint(result)
		switch result.Status {
		case models.ActionStatusFailed:
			return errors.New(result.Message)
		case models.ActionStatusSkipped:
			return fmt.Errorf("skipped: %s", result.Message)
		}
		return nil
	})
}

func mintArg(arg string) (solana.PublicKey, error) {
	mint, err := solana.PublicKeyFromBase58(arg)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid mint %q: %w", arg, err)
	}
	return mint, nil
}

func CmdView() *cobra.Command {
	var walletArg string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the NFTs, vault and candy machine state of a wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var wallet *solana.PublicKey
			if walletArg != "" {
				address, err := solana.PublicKeyFromBase58(walletArg)
				if err != nil {
					return fmt.Errorf("invalid wallet %q: %w", walletArg, err)
				}
				wallet = &address
			}
			return withRuntime(cmd.Context(), wallet, func(rt *Runtime) error {
				if _, err := rt.Poller.FetchIfUnset(cmd.Context()); err != nil {
					log.Warn("[MAIN] Failed to fetch candy machine: ", err)
				}
				rt.Orchestrator.Wait()
				jsonprint(rt.Orchestrator.View())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&walletArg, "wallet", "", "wallet to view, defaults to the signer")
	return cmd
}

func CmdStake() *cobra.Command {
	return &cobra.Command{
		Use:   "stake <mint>",
		Short: "Deposit an owned NFT into the wallet's vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := mintArg(args[0])
			if err != nil {
				return err
			}
			return runAction(cmd.Context(), func(rt *Runtime) stake.ActionResult {
				return rt.Orchestrator.StakeMint(cmd.Context(), mint)
			})
		},
	}
}

func CmdUnstake() *cobra.Command {
	return &cobra.Command{
		Use:   "unstake <mint>",
		Short: "Withdraw a staked NFT back to the wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mint, err := mintArg(args[0])
			if err != nil {
				return err
			}
			return runAction(cmd.Context(), func(rt *Runtime) stake.ActionResult {
				return rt.Orchestrator.Unstake(cmd.Context(), mint)
			})
		},
	}
}

func CmdCreateVault() *cobra.Command {
	return &cobra.Command{
		Use:   "create-vault",
		Short: "Initialize the wallet's vault in the bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), func(rt *Runtime) stake.ActionResult {
				return rt.Orchestrator.CreateVault(cmd.Context())
			})
		},
	}
}

func CmdMint() *cobra.Command {
	return &cobra.Command{
		Use:   "mint",
		Short: "Mint one NFT from the candy machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), func(rt *Runtime) stake.ActionResult {
				return rt.Orchestrator.Mint(cmd.Context())
			})
		},
	}
}

func CmdHistory() *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the recorded actions of the signer's wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.InitDB()
			if app.DB == nil {
				return errors.New("action history requires mongodb")
			}
			defer func() {
				_ = app.DB.Disconnect()
			}()

			signer := mustSigner()
			defer signer.Destroy()

			records, err := stake.NewLedger().History(signer.PublicKey(), limit)
			if err != nil {
				return err
			}
			jsonprint(records)
			return nil
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", stake.DefaultHistoryLimit, "number of actions to print")
	return cmd
}

func CmdAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the signer address",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			signer := mustSigner()
			defer signer.Destroy()
			fmt.Println(signer.PublicKey())
		},
	}
}

func main() {
	if err := CmdRoot().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
