package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/druglens/druglens/config"
	"github.com/druglens/druglens/database"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/seed"
	"github.com/druglens/druglens/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("load .env failed:", err)
	}
}

func initLogger() {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	initLogger()
	defer logger.CloseLogger()

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close database err:", err)
		}
	}()

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, os.Interrupt)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("Received SIGHUP, restarting web server...")
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			logger.Info("Shutting down web server...")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func dbExists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	ok, err := database.IsSQLiteDB(f)
	return err == nil && ok
}

func seedDb(generated int) {
	dbPath := config.GetDBPath()
	if dbExists(dbPath) {
		fmt.Println("Database exists:", dbPath)
	} else {
		fmt.Println("Creating database:", dbPath)
	}

	err := database.InitDB(dbPath)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	inserted, err := seed.Medicines(seed.All(generated))
	if err != nil {
		fmt.Println("seed medicines failed:", err)
		return
	}
	fmt.Printf("Seeding done, %d medicines inserted\n", inserted)
}

func writeQRCodes(dir string) {
	paths, err := seed.WriteQRCodes(dir, seed.SampleMedicines)
	if err != nil {
		fmt.Println("write qr codes failed:", err)
		return
	}
	for _, p := range paths {
		fmt.Println("Generated", p)
	}
}

func main() {
	loadEnv()

	var rootCmd = &cobra.Command{
		Use:   config.GetName(),
		Short: "Medicine lookup by name or barcode",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Create the tables and insert sample medicines",
		Run: func(cmd *cobra.Command, args []string) {
			generated, _ := cmd.Flags().GetInt("generated")
			seedDb(generated)
		},
	}
	seedCmd.Flags().Int("generated", seed.GeneratedCount, "number of generated SampleMed records")

	var qrCmd = &cobra.Command{
		Use:   "qrcodes",
		Short: "Generate QR code images for the sample medicines",
		Run: func(cmd *cobra.Command, args []string) {
			dir, _ := cmd.Flags().GetString("dir")
			writeQRCodes(dir)
		},
	}
	qrCmd.Flags().String("dir", seed.DefaultQRDir, "output directory")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(runCmd, seedCmd, qrCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
