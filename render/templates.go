package render

// The template set is fixed and known at build time; each entry of
// outputFiles maps an output filename to the function that renders it.

const indexHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title><%= title %></title>
  <style>
    body { margin: 0 auto; max-width: 40rem; padding: 2rem 1rem; font-family: sans-serif; }
    nav ul { list-style: none; padding: 0; }
    nav li { margin: 0.5rem 0; }
    kbd { border: 1px solid currentColor; border-radius: 3px; padding: 0 0.3em; font-size: 0.8em; }
  </style>
</head>
<body>
  <main>
    <h1><%= title %></h1>
    <%= if (hasDescription) { %>
    <section class="description"><%= description %></section>
    <% } %>
    <nav>
      <ul>
        <%= for (page) in pages { %>
        <li>
          <a href="<%= page.Href %>" accesskey="<%= page.Shortcut %>"><%= page.Title %></a>
          <kbd><%= page.Shortcut %></kbd>
        </li>
        <% } %>
      </ul>
    </nav>
  </main>
  <script src="index.js"></script>
</body>
</html>
`

const indexJSTemplate = `"use strict";

(function () {
  var routes = <%= raw(routes) %>;

  document.addEventListener("keydown", function (event) {
    if (event.ctrlKey || event.altKey || event.metaKey) {
      return;
    }

    var target = event.target;
    if (target && (target.tagName === "INPUT" || target.tagName === "TEXTAREA")) {
      return;
    }

    var href = routes[event.key];
    if (href) {
      window.location.href = href;
    }
  });
})();
`
