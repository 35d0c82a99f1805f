package web

import (
	"fmt"
	"html/template"
	"io"
	"log"
	"time"

	"github.com/keegan/led-blinker/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"stateOrUnknown": func(s string) string {
		if s == "" {
			return "UNKNOWN"
		}
		return s
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>LED Blinker</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.on { color: green; font-weight: bold; }
.off { color: #888; }
.unknown { color: orange; }
.connected { color: green; }
.disconnected { color: red; }
.led { display: inline-block; width: 14px; height: 14px; border-radius: 50%; margin-right: 8px; vertical-align: middle; background: #ccc; }
.led.on { background: #0c0; box-shadow: 0 0 8px #0c0; }
.live-dot { display: inline-block; width: 8px; height: 8px; border-radius: 50%; margin-left: 6px; vertical-align: middle; }
.live-dot.ok { background: green; }
.live-dot.err { background: red; }
.live-dot.pending { background: orange; }
</style>
</head>
<body>
<h1>LED Blinker<span id="live-dot" class="live-dot pending" title="connecting"></span></h1>

<h2>State</h2>
<table>
<tr><th>LED</th><td><span id="led-dot" class="led {{if eq (stateOrUnknown (printf "%s" .LED)) "ON"}}on{{end}}"></span><span id="led-state" class="{{if eq (stateOrUnknown (printf "%s" .LED)) "ON"}}on{{else if eq (stateOrUnknown (printf "%s" .LED)) "OFF"}}off{{else}}unknown{{end}}">{{stateOrUnknown (printf "%s" .LED)}}</span></td></tr>
<tr><th>Last toggle</th><td id="last-toggle">{{.LastToggleMS}}ms</td></tr>
</table>

<h2>Connectivity</h2>
<table>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
{{if .Hardware}}<tr><th>Output</th><td>{{.Hardware.Mode}} ({{.Hardware.Chip}} line {{.Hardware.Line}})</td></tr>{{end}}
</table>

<h2>Toggle Counts</h2>
<table>
<tr><th>ON</th><td id="count-on">{{.Counts.On}}</td></tr>
<tr><th>OFF</th><td id="count-off">{{.Counts.Off}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>On duration</th><td>{{.Config.OnMs}}ms</td></tr>
<tr><th>Off duration</th><td>{{.Config.OffMs}}ms</td></tr>
<tr><th>Tick</th><td>{{.Config.TickMs}}ms</td></tr>
<tr><th>Heartbeat</th><td>{{if eq .Config.HeartbeatMs 0}}disabled{{else}}{{.Config.HeartbeatMs}}ms{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
<script>
(function() {
  var dot = document.getElementById("live-dot");
  var ledDot = document.getElementById("led-dot");
  var ledEl = document.getElementById("led-state");
  var lastEl = document.getElementById("last-toggle");
  var onEl = document.getElementById("count-on");
  var offEl = document.getElementById("count-off");

  function setDot(cls, title) {
    dot.className = "live-dot " + cls;
    dot.title = title;
  }

  function apply(msg) {
    if (!msg.led) return;
    ledEl.textContent = msg.led.state;
    ledEl.className = msg.led.state === "ON" ? "on" : "off";
    ledDot.className = "led" + (msg.led.state === "ON" ? " on" : "");
    lastEl.textContent = msg.led.at_ms + "ms";
    if (msg.led.counts) {
      onEl.textContent = msg.led.counts.on;
      offEl.textContent = msg.led.counts.off;
    }
  }

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");

    ws.onopen = function() { setDot("ok", "live"); };
    ws.onclose = function() {
      setDot("err", "disconnected");
      setTimeout(connect, 5000);
    };
    ws.onerror = function() { setDot("err", "error"); };
    ws.onmessage = function(ev) {
      try { apply(JSON.parse(ev.data)); } catch (e) {}
    };
  }

  connect();
})();
</script>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	if err := indexTmpl.Execute(w, snap); err != nil {
		log.Printf("web: render index: %v", err)
	}
}
