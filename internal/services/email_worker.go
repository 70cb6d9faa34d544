package services

import (
	"blogcms/internal/logger"

	"go.uber.org/zap"
)

type EmailJob struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

var EmailQueue = make(chan EmailJob, 100) // глобальная очередь на 100 писем

// enqueueEmail кладёт письмо в очередь без блокировки: переполненная
// очередь означает потерю письма, не отказ основной операции.
func enqueueEmail(job EmailJob) {
	select {
	case EmailQueue <- job:
	default:
		logger.Log.Warn("Очередь писем переполнена, письмо пропущено",
			zap.Strings("to", job.To), zap.String("subject", job.Subject))
	}
}

func StartEmailWorker(emailService *EmailService) {
	go func() {
		for job := range EmailQueue {
			var err error
			if job.IsHTML {
				err = emailService.SendHTML(job.To, job.Subject, job.Body)
			} else {
				err = emailService.Send(job.To, job.Subject, job.Body)
			}
			if err != nil {
				logger.Log.Error("Не удалось отправить письмо", zap.Error(err))
			}
		}
	}()
}
