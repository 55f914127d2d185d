package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/mdp/qrterminal"
	"github.com/yatori-dev/yatori-request-link/activation"
	"github.com/yatori-dev/yatori-request-link/address"
	"github.com/yatori-dev/yatori-request-link/config"
	"github.com/yatori-dev/yatori-request-link/currency"
	"github.com/yatori-dev/yatori-request-link/link"
	"github.com/yatori-dev/yatori-request-link/token"
	"gopkg.in/yaml.v3"
)

func main() {
	ctx := context.Background()

	var file string
	flag.StringVar(&file, "file", "", "the location of the file to be read in as configuration")

	var recipient string
	flag.StringVar(&recipient, "recipient", "", "the address (or configured recipient name) to receive the payment")

	var amountArg string
	flag.StringVar(&amountArg, "amount", "", "the USD amount to request, such as 5.00")

	var yid string
	flag.StringVar(&yid, "yid", "", "the tracking identifier to embed in the link; generated if not given")

	var tokenType string
	flag.StringVar(&tokenType, "token", "", "the token type to embed in the link; resolved if not given")

	var network string
	flag.StringVar(&network, "network", "", "the Solana network for the payment")

	var showQR bool
	flag.BoolVar(&showQR, "qr", false, "render the generated link as a QR code")

	flag.Parse()

	fmt.Printf("Reading configuration from '%s'\n", file)

	cfg, err := readConfiguration(file)
	if err != nil {
		panic(fmt.Sprintf("Failed to read configuration: %v", err))
	}

	if cfg.BaseURL == "" {
		panic("Configuration must supply a base_url")
	}

	recipientAddress, err := resolveRecipientAddress(cfg, recipient)
	if err != nil {
		panic(fmt.Sprintf("Failed to resolve recipient address: %v", err))
	}

	amount, err := resolveAmount(amountArg)
	if err != nil {
		panic(fmt.Sprintf("Failed to resolve amount: %v", err))
	}

	if network == "" {
		network = cfg.GetDefaultNetwork()
	}

	var tokenResolver token.Resolver
	if cfg.Activation != nil && cfg.Activation.URL != "" {
		checkTimeout := time.Duration(cfg.Activation.GetTimeoutSeconds()) * time.Second
		checker := activation.NewHTTPChecker(http.DefaultClient, cfg.Activation.URL, checkTimeout)
		tokenResolver = token.NewActivationResolver(checker)
	} else {
		// without an activation endpoint, there is nothing to consult
		tokenResolver = token.NewStaticResolver(cfg.GetDefaultToken())
	}

	builder := link.NewBuilder(link.NewYatoriURLGenerator(cfg.BaseURL, cfg.IncludeNetworkParam), tokenResolver)

	request := &link.Request{
		Recipient: recipientAddress,
		Amount:    amount,
		Network:   network,
	}
	if yid != "" {
		request.YID = &yid
	}
	if tokenType != "" {
		request.Token = &tokenType
	}

	paymentURL, err := builder.CreatePaymentLink(ctx, request)
	if err != nil {
		panic(fmt.Sprintf("Failed to create payment link: %v", err))
	}

	fmt.Printf("Payment link for %s to %s:\n", amount, recipientAddress)
	fmt.Println(paymentURL)

	if showQR {
		fmt.Println("Scan the following QR code to open the payment request:")
		qrterminal.Generate(paymentURL, qrterminal.M, os.Stdout)
	}
}

func resolveRecipientAddress(cfg *config.Config, recipient string) (string, error) {
	if recipient == "" {
		prompt := promptui.Prompt{
			Label:    "Recipient address",
			Validate: address.Validate,
		}

		promptedRecipient, err := prompt.Run()
		if err != nil {
			return "", fmt.Errorf("failed to prompt for recipient address: %w", err)
		}

		return promptedRecipient, nil
	}

	if bookAddress, isNamed := cfg.ResolveRecipient(recipient); isNamed {
		return bookAddress, nil
	}

	return recipient, nil
}

func resolveAmount(amountArg string) (currency.Amount, error) {
	if amountArg == "" {
		prompt := promptui.Prompt{
			Label: "Amount (USD)",
			Validate: func(input string) error {
				parsedAmount, err := currency.ParseAmount(input)
				if err != nil {
					return err
				}

				return parsedAmount.Validate()
			},
		}

		promptedAmount, err := prompt.Run()
		if err != nil {
			return currency.Amount{}, fmt.Errorf("failed to prompt for amount: %w", err)
		}

		amountArg = promptedAmount
	}

	amount, err := currency.ParseAmount(amountArg)
	if err != nil {
		return currency.Amount{}, fmt.Errorf("failed to parse amount '%s': %w", amountArg, err)
	}

	return amount, nil
}

func readConfiguration(file string) (*config.Config, error) {
	fileBytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", file, err)
	}

	config := &config.Config{}
	if err := yaml.Unmarshal(fileBytes, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML in file '%s': %w", file, err)
	}

	return config, nil
}
