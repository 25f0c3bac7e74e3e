package dev

// ClientScript is the inline JavaScript that keeps a page connected to the
// reload endpoint. It is added to admin pages in development mode.
const ClientScript = `(function() {
    'use strict';

    var delay = 1000;
    var maxDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '` + ReloadPath + `');

        ws.onopen = function() {
            delay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            if (msg.type === 'reload') {
                location.reload();
            } else if (msg.type === 'error') {
                console.error('[plebisadmin]', msg.error);
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, maxDelay);
                connect();
            }, delay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();`
