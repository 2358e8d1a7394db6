package mailer

import (
	"net/smtp"

	"bizsuite-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

type SMTPClient struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
	Auth     smtp.Auth
}

func NewSMTPClient(driverConfig *config.DriverConfig, log *logrus.Logger) *SMTPClient {
	auth := smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	log.Infof("SMTP client configured for %s:%d", driverConfig.SMTP.Host, driverConfig.SMTP.Port)
	return &SMTPClient{
		Host:     driverConfig.SMTP.Host,
		Port:     driverConfig.SMTP.Port,
		Username: driverConfig.SMTP.Username,
		Password: driverConfig.SMTP.Password,
		Sender:   driverConfig.SMTP.EmailSender,
		Auth:     auth,
	}
}
