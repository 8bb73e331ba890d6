package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Exercise Tracker</title>
	<style>
		body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
		form { margin-bottom: 2rem; }
		label, input { display: block; margin: 0.25rem 0; }
		code { background: #eee; padding: 0 0.25rem; }
	</style>
</head>
<body>
	<h1>Exercise Tracker</h1>

	<form action="/api/users" method="post">
		<h2>Create a new user</h2>
		<input name="username" placeholder="username" required>
		<input type="submit" value="Submit">
	</form>

	<form id="exercise-form" method="post">
		<h2>Add exercises</h2>
		<input id="uid" name=":_id" placeholder=":_id" required>
		<input name="description" placeholder="description*" required>
		<input name="duration" placeholder="duration* (mins.)" required>
		<input name="date" placeholder="date (yyyy-mm-dd)">
		<input type="submit" value="Submit">
	</form>

	<p>
		<code>GET /api/users/:_id/logs?[from][&amp;to][&amp;limit]</code><br>
		<code>from</code> and <code>to</code> are dates (yyyy-mm-dd), <code>limit</code> is a number.
	</p>

	<script>
		document.getElementById('exercise-form').addEventListener('submit', function () {
			this.action = '/api/users/' + encodeURIComponent(document.getElementById('uid').value) + '/exercises';
		});
	</script>
</body>
</html>
`

// Index renders the landing page
func Index() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, indexHTML)
		return err
	})
}
