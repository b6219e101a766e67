package site

// indexTemplate is the landing page. The news section carries a
// server-rendered card set as its static fallback; the page script replaces
// it with API-driven state once the content endpoint answers.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteName}} — study abroad programs</title>
  <link rel="stylesheet" href="css/style.css">
</head>
<body>
  <header class="header">
    <a class="header__logo" href="#top">{{.SiteName}}</a>
    <button class="header__burger" type="button" aria-label="Open menu" aria-expanded="false">
      <span></span><span></span><span></span>
    </button>
    <nav class="header__nav">
      <a class="header__link" href="#programs">Programs</a>
      <a class="header__link" href="#about">About</a>
      <a class="header__link" href="#news">News</a>
      <a class="header__link" href="#reviews">Reviews</a>
      <a class="header__link header__link--accent" href="#feedback">Apply</a>
    </nav>
  </header>

  <main id="top">
    <section class="hero">
      <div class="hero__slider" data-carousel="hero">
        <div class="hero__slide">
          <h1 class="hero__title">Exchange programs that open the world</h1>
          <p class="hero__subtitle">Semester and year-long placements with partner schools in twelve countries.</p>
          <a class="hero__cta button" href="#feedback">Request a call</a>
        </div>
      </div>
    </section>

    <section class="programs" id="programs">
      <h2 class="programs__title">Programs</h2>
      <div class="programs__slider" data-carousel="programs"></div>
    </section>

    <section class="about" id="about">
      <h2 class="about__title">How it works</h2>
      <div class="about__accordion" data-accordion>
        <details class="about__item" open>
          <summary class="about__question">Who can apply?</summary>
          <p class="about__answer">Students aged 14 to 18 currently enrolled in a secondary school.</p>
        </details>
        <details class="about__item">
          <summary class="about__question">How long does a placement last?</summary>
          <p class="about__answer">One term, one semester, or a full academic year.</p>
        </details>
        <details class="about__item">
          <summary class="about__question">Is accommodation arranged?</summary>
          <p class="about__answer">Every placement includes a vetted host family and local coordinator.</p>
        </details>
      </div>
    </section>

    <section class="news" id="news" data-carousel="news">
      <h2 class="news__title">News</h2>

      <div class="news__tabs" role="tablist">
        {{- range .Categories}}
        <button class="news__tab{{if eq . $.ActiveCategory}} news__tab--active{{end}}" type="button" role="tab" data-category="{{.}}">{{.}}</button>
        {{- end}}
      </div>

      <div class="news__list">
        {{- range .Cards}}
        <article class="news__card{{if .Large}} news__card--large{{end}}" data-position="{{.Position}}">
          <img class="news__image" src="{{.Image}}" alt="" loading="lazy">
          <time class="news__date">{{.Item.Date.Format "02/01/2006"}}</time>
          <h3 class="news__card-title">{{.Item.Title}}</h3>
          <div class="news__card-text">{{.DescriptionHTML}}</div>
          <a class="news__card-link" href="{{.Item.Link}}">Read more</a>
        </article>
        {{- end}}
      </div>

      <div class="news__nav">
        <button class="news__arrow news__arrow--prev" type="button" aria-label="Previous page" disabled></button>
        <div class="news__pagination" data-window-start="{{.Carousel.WindowStart}}" data-window-count="{{.Carousel.WindowCount}}">
          {{- range $i := seq .Carousel.TotalSlides}}
          <button class="news__bullet" type="button" data-slide="{{$i}}">{{add $i 1}}</button>
          {{- end}}
        </div>
        <button class="news__arrow news__arrow--next" type="button" aria-label="Next page"></button>
      </div>
    </section>

    <section class="reviews" id="reviews">
      <h2 class="reviews__title">Reviews</h2>
      <div class="reviews__slider" data-carousel="reviews"></div>
    </section>

    <section class="feedback" id="feedback">
      <h2 class="feedback__title">Leave a request</h2>
      <form class="feedback__form" method="post" action="/api/feedback" data-feedback>
        <input class="feedback__input" type="text" name="name" placeholder="Your name" required>
        <input class="feedback__input" type="tel" name="phone" placeholder="+7 (___) ___-__-__" required>
        <input class="feedback__input" type="email" name="email" placeholder="Email (optional)">
        <textarea class="feedback__input feedback__input--message" name="message" placeholder="Tell us about yourself"></textarea>
        <button class="feedback__submit button" type="submit">Send</button>
      </form>
      <div class="modal" data-modal hidden>
        <div class="modal__body">
          <p class="modal__message" data-modal-message></p>
          <button class="modal__close button" type="button">Close</button>
        </div>
      </div>
    </section>
  </main>

  <footer class="footer">
    <p class="footer__copy">&copy; {{.Year}} {{.SiteName}}</p>
  </footer>

  <script src="js/main.js"></script>
  {{- if .LiveReload}}
  <script>
    (function () {
      var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws/reload");
      ws.onmessage = function (e) { if (e.data === "reload") location.reload(); };
    })();
  </script>
  {{- end}}
</body>
</html>
`
