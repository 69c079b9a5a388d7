package server

// reloadScript is appended to served documents when live reload is enabled.
// It reconnects with a short backoff so the page survives server restarts.
const reloadScript = `
<script>
(function () {
  var retry = 0;
  function connect() {
    var ws = new WebSocket("ws://" + location.host + "/__reload");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === "reload") location.reload();
      if (msg.type === "error") console.error("tagtree:", msg.error);
    };
    ws.onopen = function () { retry = 0; };
    ws.onclose = function () {
      retry++;
      setTimeout(connect, Math.min(1000 * retry, 5000));
    };
  }
  connect();
})();
</script>`
