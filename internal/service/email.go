package service

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) Send(to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return errors.New("no recipient address given")
	}
	if strings.TrimSpace(subject) == "" {
		return errors.New("no subject given")
	}
	if strings.TrimSpace(body) == "" {
		return errors.New("no message given")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendWelcome(to, name string) error {
	subject := "Welcome to KUD Karadjordje Bern!"
	body := fmt.Sprintf("Hello %s,\n\nA warm welcome to KUD Karadjordje Bern!\n\nWe are happy to have you as a new member. You will shortly receive more information about our training times and events.\n\nIf you have any questions, feel free to reach out at any time.\n\nBest regards,\nKUD Karadjordje Bern", name)
	return s.Send(to, subject, body)
}

func (s *emailService) SendAppointmentConfirmation(to, name, date, location string) error {
	subject := "Appointment confirmation - KUD Karadjordje Bern"
	body := fmt.Sprintf("Hello %s,\n\nyour participation in the following appointment has been confirmed:\n\nDate: %s\nLocation: %s\n\nWe look forward to seeing you!\n\nBest regards,\nKUD Karadjordje Bern", name, date, location)
	return s.Send(to, subject, body)
}

func (s *emailService) SendFormReminder(to, name, formType, returnDate string) error {
	subject := "Reminder: form outstanding - KUD Karadjordje Bern"
	body := fmt.Sprintf("Hello %s,\n\nplease remember to hand in the following form:\n\nForm type: %s\nReturn date: %s\n\nIf you have any questions, we are happy to help.\n\nBest regards,\nKUD Karadjordje Bern", name, formType, returnDate)
	return s.Send(to, subject, body)
}
