package helpers

import "fmt"

func BuildSimpleHTML(title, body string) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif; background:#f9f9f9;">
    <table width="100%%" cellpadding="0" cellspacing="0" bgcolor="#f9f9f9">
      <tr>
        <td align="center" style="padding:32px 0;">
          <table width="500" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:8px; box-shadow:0 1px 6px #eee;">
            <tr>
              <td>
                <h2 style="color:#2d74da; margin-top:0;">%s</h2>
                <div style="font-size:16px; color:#222;">%s</div>
                <hr style="margin:32px 0 16px 0; border:0; border-top:1px solid #eee;">
                <div style="font-size:12px; color:#999;">Письмо сгенерировано автоматически. Не отвечайте на него.</div>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, title, body)
}

// BuildApprovedHTML — письмо о том, что заявка одобрена.
func BuildApprovedHTML(username string) string {
	body := fmt.Sprintf(`
      <p>Здравствуйте, %s!</p>
      <p>Ваша заявка на регистрацию одобрена администратором.
      Теперь вы можете войти на сайт со своим email и паролем.</p>
    `, username)
	return BuildSimpleHTML("Регистрация одобрена", body)
}

// BuildRejectedHTML — письмо о том, что заявка отклонена.
func BuildRejectedHTML(username string) string {
	body := fmt.Sprintf(`
      <p>Здравствуйте, %s!</p>
      <p>К сожалению, ваша заявка на регистрацию была отклонена администратором.</p>
    `, username)
	return BuildSimpleHTML("Заявка отклонена", body)
}
