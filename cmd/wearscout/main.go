package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/wearscout/wearscout/config"
	"github.com/wearscout/wearscout/discovery"
	"github.com/wearscout/wearscout/scraper"
	"github.com/wearscout/wearscout/store"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	fileCfg, err := config.LoadConfigFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config file: %v\n", err)
		os.Exit(1)
	}

	storePath := getEnv("WEARSCOUT_DB", "wearscout.db")
	if fileCfg != nil && fileCfg.StorePath != "" {
		storePath = fileCfg.StorePath
	}

	st, err := store.Open(storePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	switch os.Args[1] {
	case "run":
		handleRun(st, fileCfg)
	case "scrape":
		handleScrape(st, fileCfg, os.Args[2:])
	case "products":
		handleProducts(st)
	case "schedule":
		handleSchedule(st, os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// newService builds the scraping service from stored settings plus file
// overrides.
func newService(st *store.Store, fileCfg *config.FileConfig) *discovery.Service {
	cfg := &discovery.Config{
		NewsSites:    scraper.DefaultNewsSites(),
		ProductSites: scraper.DefaultProductSites(),
	}
	if fileCfg != nil {
		cfg.NewsSites = append(cfg.NewsSites, fileCfg.NewsSites...)
		cfg.ProductSites = append(cfg.ProductSites, fileCfg.ProductSites...)
	}

	return discovery.NewService(st, discovery.LogNotifier{}, cfg)
}

func handleRun(st *store.Store, fileCfg *config.FileConfig) {
	settings, err := st.GetSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read settings: %v\n", err)
		os.Exit(1)
	}

	interval := settings.AutoScrapeIntervalHours
	if fileCfg != nil && fileCfg.ScrapeIntervalHours != nil {
		interval = *fileCfg.ScrapeIntervalHours
	}
	if fileCfg != nil && fileCfg.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileCfg.NotificationsEnabled
		if err := st.SetSettings(settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to save settings: %v\n", err)
			os.Exit(1)
		}
	}

	svc := newService(st, fileCfg)
	scheduler := discovery.NewScheduler(func() { svc.TryRunCycle() })
	scheduler.Configure(interval)
	defer scheduler.Stop()

	log.Println("INFO: wearscout running, press Ctrl+C to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Println("INFO: shutting down")
}

func handleScrape(st *store.Store, fileCfg *config.FileConfig, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: scrape requires a URL")
		os.Exit(1)
	}

	svc := newService(st, fileCfg)
	product, err := svc.ScrapeURL(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(product, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode product: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func handleProducts(st *store.Store) {
	products, err := st.GetProducts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read catalog: %v\n", err)
		os.Exit(1)
	}

	if len(products) == 0 {
		fmt.Println("No products cataloged yet.")
		return
	}

	for _, p := range products {
		fmt.Printf("%s\n  %s | %s | %s\n  %s\n", p.Title, p.Category, p.BodyPlacement, p.Price, p.URL)
	}
	fmt.Printf("\n%d product(s)\n", len(products))
}

func handleSchedule(st *store.Store, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: schedule requires an interval in hours (0 disables)")
		os.Exit(1)
	}

	hours, err := strconv.Atoi(args[0])
	if err != nil || hours < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid interval: %s\n", args[0])
		os.Exit(1)
	}

	settings, err := st.GetSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read settings: %v\n", err)
		os.Exit(1)
	}
	settings.AutoScrapeIntervalHours = hours
	if err := st.SetSettings(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save settings: %v\n", err)
		os.Exit(1)
	}

	if hours == 0 {
		fmt.Println("Automatic scraping disabled.")
	} else {
		fmt.Printf("Automatic scraping every %d hour(s); takes effect on next run.\n", hours)
	}
}

func printUsage() {
	fmt.Println("wearscout - wearable AI product discovery")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wearscout <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run              Start the background scraping daemon")
	fmt.Println("  scrape <url>     Scrape a single URL and print the product record")
	fmt.Println("  products         List the cataloged products")
	fmt.Println("  schedule <hours> Set the automatic scraping interval (0 disables)")
	fmt.Println("  help             Show this help")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  WEARSCOUT_DB     Path to the state database (default: wearscout.db)")
}
