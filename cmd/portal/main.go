// Command portal is a terminal client for the public booking flow. It walks
// a visitor through the same steps the web wizard does: pick a service, a
// date, a time, leave contact details, confirm.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/drivers/logger"
	"bizsuite-service/internal/app/portal/gateway"
	"bizsuite-service/internal/app/portal/session"
	"bizsuite-service/internal/app/portal/wizard"
	"bizsuite-service/internal/pkg/dto/responses"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: portal <company-slug>")
		os.Exit(1)
	}
	companySlug := os.Args[1]

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	sessionStore, err := session.NewStore(session.NewFileStorage(internalConfig.Portal.TokenFilePath))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to restore session:", err)
		os.Exit(1)
	}

	client := gateway.NewClient(
		internalConfig.Portal.APIBaseUrl,
		internalConfig.Portal.RequestTimeoutInSeconds,
		sessionStore,
		log,
		func() { fmt.Println("your session expired, please sign in again") },
	)

	flow := wizard.NewWizard(client, companySlug, nil)
	if err := runBooking(context.Background(), flow, bufio.NewScanner(os.Stdin)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBooking(ctx context.Context, flow *wizard.Wizard, input *bufio.Scanner) error {
	if err := flow.Start(ctx); err != nil {
		if errors.Is(err, wizard.ErrTenantUnavailable) {
			return fmt.Errorf("this booking page does not exist")
		}
		return err
	}

	company := flow.Company()
	if company.WelcomeTitle != "" {
		fmt.Println(company.WelcomeTitle)
	}
	if company.WelcomeMessage != "" {
		fmt.Println(company.WelcomeMessage)
	}
	fmt.Printf("booking at %s\n\n", company.Name)

	if err := flow.Begin(); err != nil {
		return err
	}

	service, err := pickService(company, input)
	if err != nil {
		return err
	}
	if err := flow.SelectService(service); err != nil {
		return err
	}

	date, err := pickDate(flow, input)
	if err != nil {
		return err
	}
	if err := flow.SelectDate(ctx, date); err != nil {
		return err
	}

	clock, err := pickTime(flow, input)
	if err != nil {
		return err
	}
	if err := flow.SelectTime(clock); err != nil {
		return err
	}

	name := prompt(input, "your name: ")
	email := prompt(input, "your email: ")
	phone := prompt(input, "your phone: ")
	notes := prompt(input, "notes (optional): ")
	if err := flow.SetContact(name, email, phone, notes); err != nil {
		return err
	}

	if !flow.CanSubmit() {
		return fmt.Errorf("name, email and phone are required")
	}
	if err := flow.Submit(ctx); err != nil {
		return err
	}

	appointment := flow.Result().Appointment
	fmt.Printf("\nbooked: %s on %s at %s (%s)\n",
		appointment.Service, appointment.Date, appointment.Time, appointment.Status)
	return nil
}

func pickService(company *responses.PublicCompanyResponse, input *bufio.Scanner) (responses.PublicService, error) {
	if len(company.Services) == 0 {
		return responses.PublicService{}, fmt.Errorf("%s has no bookable services", company.Name)
	}

	fmt.Println("services:")
	for i, service := range company.Services {
		line := fmt.Sprintf("  %d. %s", i+1, service.Name)
		if company.ShowPrices && service.Price > 0 {
			line += fmt.Sprintf(" (%.2f)", service.Price)
		}
		if service.DurationMinutes > 0 {
			line += fmt.Sprintf(" %dmin", service.DurationMinutes)
		}
		fmt.Println(line)
	}

	index, err := pickIndex(input, "pick a service: ", len(company.Services))
	if err != nil {
		return responses.PublicService{}, err
	}
	return company.Services[index], nil
}

func pickDate(flow *wizard.Wizard, input *bufio.Scanner) (string, error) {
	for {
		dates := flow.VisibleDates()
		fmt.Println("dates:")
		for i, date := range dates {
			fmt.Printf("  %d. %s\n", i+1, date)
		}
		fmt.Println("  n. next week   p. previous week")

		raw := prompt(input, "pick a date: ")
		switch raw {
		case "n":
			flow.NextPage()
			continue
		case "p":
			flow.PrevPage()
			continue
		}

		index, err := strconv.Atoi(raw)
		if err == nil && index >= 1 && index <= len(dates) {
			return dates[index-1], nil
		}
		fmt.Println("enter a date number, n or p")
	}
}

func pickTime(flow *wizard.Wizard, input *bufio.Scanner) (string, error) {
	slots := flow.Slots()
	if len(slots) == 0 {
		if message := flow.SlotsMessage(); message != "" {
			return "", fmt.Errorf("%s", message)
		}
		return "", fmt.Errorf("no available times on this day")
	}

	fmt.Println("times:")
	for i, slot := range slots {
		fmt.Printf("  %d. %s\n", i+1, slot)
	}

	index, err := pickIndex(input, "pick a time: ", len(slots))
	if err != nil {
		return "", err
	}
	return slots[index], nil
}

func prompt(input *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !input.Scan() {
		return ""
	}
	return strings.TrimSpace(input.Text())
}

func pickIndex(input *bufio.Scanner, label string, max int) (int, error) {
	for {
		raw := prompt(input, label)
		index, err := strconv.Atoi(raw)
		if err == nil && index >= 1 && index <= max {
			return index - 1, nil
		}
		fmt.Printf("enter a number between 1 and %d\n", max)
	}
}
