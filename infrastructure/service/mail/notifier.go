package mail

import (
	"context"
	"fmt"

	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
)

const (
	subjectWelcome       = "Bem-vindo à SparkWave Consultoria Empresarial"
	subjectPasswordReset = "Redefinição de Senha - SparkWave Consultoria Empresarial"
	subjectAccountStatus = "Status da Conta - SparkWave Consultoria Empresarial"
)

// Notifier implements outbound.Mailer by rendering the notification
// bodies and handing them to the Dispatcher.
type Notifier struct {
	dispatcher *Dispatcher
}

func NewNotifier(dispatcher *Dispatcher) *Notifier {
	return &Notifier{dispatcher: dispatcher}
}

// SendWelcome mails a greeting to a new account. When plainPassword is
// non-empty the account was created by an admin and the generated
// credentials are included.
func (n *Notifier) SendWelcome(user *entity.User, plainPassword string) {
	var body string
	if plainPassword != "" {
		body = fmt.Sprintf(
			"Olá %s,\n\n"+
				"Sua conta foi criada na plataforma da SparkWave Consultoria Empresarial.\n\n"+
				"Suas credenciais de acesso são:\n"+
				"Usuário: %s\n"+
				"Senha: %s\n\n"+
				"Recomendamos que altere sua senha após o primeiro acesso.\n\n"+
				"Atenciosamente,\nEquipe SparkWave",
			user.FullName, user.Username, plainPassword)
	} else {
		body = fmt.Sprintf(
			"Olá %s,\n\n"+
				"Sua conta foi criada com sucesso na plataforma da SparkWave Consultoria Empresarial.\n\n"+
				"Você já pode acessar nossos serviços utilizando seu nome de usuário: %s\n\n"+
				"Atenciosamente,\nEquipe SparkWave",
			user.FullName, user.Username)
	}
	n.dispatcher.Enqueue(Message{To: user.Email, Subject: subjectWelcome, Body: body})
}

func (n *Notifier) SendAccountStatus(user *entity.User, active bool) {
	status := "desativada"
	followUp := "Caso tenha dúvidas, entre em contato com nosso suporte."
	if active {
		status = "ativada"
		followUp = "Você já pode acessar nossos serviços normalmente."
	}
	body := fmt.Sprintf(
		"Olá %s,\n\n"+
			"Informamos que sua conta na plataforma da SparkWave Consultoria Empresarial foi %s.\n\n"+
			"%s\n\n"+
			"Atenciosamente,\nEquipe SparkWave",
		user.FullName, status, followUp)
	n.dispatcher.Enqueue(Message{To: user.Email, Subject: subjectAccountStatus, Body: body})
}

func (n *Notifier) SendPasswordReset(user *entity.User, newPassword string) {
	body := fmt.Sprintf(
		"Olá %s,\n\n"+
			"Sua senha foi redefinida na plataforma da SparkWave Consultoria Empresarial.\n\n"+
			"Sua nova senha é: %s\n\n"+
			"Recomendamos que altere esta senha após o próximo acesso.\n\n"+
			"Atenciosamente,\nEquipe SparkWave",
		user.FullName, newPassword)
	n.dispatcher.Enqueue(Message{To: user.Email, Subject: subjectPasswordReset, Body: body})
}

// LogSender is used when mail is disabled: it records what would have
// been sent and drops the message.
type LogSender struct {
	Logger logger.Logger
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.Logger.Info(ctx, "mail disabled, skipping delivery", map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}
