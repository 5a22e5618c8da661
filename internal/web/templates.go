// Package web holds the single page served by the daemon: the submission
// form, the frame gallery with its modal viewer, and the cached-frames view.
package web

import (
	"html/template"
	"io"
)

// PageData feeds the index template.
type PageData struct {
	BackendURL      string
	HasCachedFrames bool
	Version         string
}

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// RenderIndex writes the UI page.
func RenderIndex(w io.Writer, data PageData) error {
	return indexTmpl.Execute(w, data)
}

const indexHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <title>Video Frame Extractor</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.8/dist/css/bootstrap.min.css" rel="stylesheet" crossorigin="anonymous">
    <style>
      .frame-card img { width: 100%; height: auto; border-radius: 4px; cursor: pointer; }
      #viewer-backdrop {
        position: fixed; inset: 0; z-index: 1050; display: none;
        align-items: center; justify-content: center; background: rgba(0,0,0,.75);
      }
      #viewer-backdrop.open { display: flex; }
      #viewer-img { max-width: 90vw; max-height: 80vh; border-radius: 4px; }
    </style>
  </head>
  <body class="bg-light">
    <div class="container py-4" style="max-width: 960px">
      <h1 class="text-center mb-4">Video Frame Extractor</h1>

      <div id="form-panel" class="card shadow-sm">
        <div class="card-body">
          <h2 class="h5 mb-3">Upload Video</h2>
          <form id="extract-form">
            <div class="mb-3">
              <div class="form-check form-check-inline">
                <input class="form-check-input" type="radio" name="source" id="source-file" value="file" checked>
                <label class="form-check-label" for="source-file">Video file</label>
              </div>
              <div class="form-check form-check-inline">
                <input class="form-check-input" type="radio" name="source" id="source-url" value="url">
                <label class="form-check-label" for="source-url">Reel URL</label>
              </div>
            </div>
            <div class="mb-3" id="file-group">
              <label class="form-label" for="video-file">Video File</label>
              <input class="form-control" type="file" id="video-file" accept="video/*">
            </div>
            <div class="mb-3 d-none" id="url-group">
              <label class="form-label" for="reel-url">Video URL</label>
              <input class="form-control" type="url" id="reel-url" placeholder="https://www.instagram.com/reel/...">
            </div>
            <div class="mb-3">
              <label class="form-label" for="method">Method</label>
              <select class="form-select" id="method">
                <option value="ssim">SSIM</option>
                <option value="pixel">Pixel Difference</option>
              </select>
            </div>
            <div class="mb-3">
              <label class="form-label" for="threshold">Threshold</label>
              <input class="form-control" type="number" id="threshold" step="0.1" min="0" max="1" value="0.8">
            </div>
            <button type="submit" class="btn btn-primary w-100" id="submit-btn">Upload</button>
          </form>
          <p class="text-danger small mt-3 mb-0" id="form-error"></p>
        </div>
      </div>

      <div id="result-panel" class="text-center my-3 d-none">
        <button class="btn btn-primary me-2" id="try-another">Try Another Video</button>
        <button class="btn btn-success" id="view-all">View All Files</button>
      </div>

      <div id="gallery" class="row g-3 mt-1"></div>

      <p class="text-center text-muted small mt-4">frameview {{.Version}} &middot; backend {{.BackendURL}}</p>
    </div>

    <div id="viewer-backdrop">
      <div class="bg-white p-3 rounded shadow text-center">
        <img id="viewer-img" src="" alt="Full-size frame">
        <div class="mt-3">
          <button class="btn btn-primary" id="viewer-close">Close</button>
        </div>
      </div>
    </div>

    <script>
      const form = document.getElementById("extract-form");
      const formPanel = document.getElementById("form-panel");
      const resultPanel = document.getElementById("result-panel");
      const gallery = document.getElementById("gallery");
      const formError = document.getElementById("form-error");
      const submitBtn = document.getElementById("submit-btn");
      const viewAllBtn = document.getElementById("view-all");
      const backdrop = document.getElementById("viewer-backdrop");
      const viewerImg = document.getElementById("viewer-img");

      let submitSeq = 0;

      document.getElementsByName("source").forEach(function (radio) {
        radio.addEventListener("change", function () {
          const fileMode = document.getElementById("source-file").checked;
          document.getElementById("file-group").classList.toggle("d-none", !fileMode);
          document.getElementById("url-group").classList.toggle("d-none", fileMode);
        });
      });

      form.addEventListener("submit", async function (e) {
        e.preventDefault();
        formError.textContent = "";

        const fileMode = document.getElementById("source-file").checked;
        const data = new FormData();
        data.append("method", document.getElementById("method").value);
        data.append("threshold", document.getElementById("threshold").value);

        if (fileMode) {
          const file = document.getElementById("video-file").files[0];
          if (!file) {
            formError.textContent = "Please select a file.";
            return;
          }
          data.append("source", "file");
          data.append("video_file", file);
        } else {
          const url = document.getElementById("reel-url").value.trim();
          if (!url) {
            formError.textContent = "Please enter a video URL.";
            return;
          }
          data.append("source", "url");
          data.append("reel_url", url);
        }

        const token = ++submitSeq;
        submitBtn.disabled = true;
        submitBtn.textContent = "Processing...";
        try {
          const resp = await fetch("/api/extract", { method: "POST", body: data });
          const body = await resp.json();
          if (token !== submitSeq) return; // a newer submission superseded this one
          if (!resp.ok) {
            formError.textContent = body.error || "An error occurred while processing the video.";
            return;
          }
          showResult(body.frames);
        } catch (err) {
          if (token === submitSeq) {
            formError.textContent = "An error occurred while processing the video.";
          }
        } finally {
          if (token === submitSeq) {
            submitBtn.disabled = false;
            submitBtn.textContent = "Upload";
          }
        }
      });

      function showResult(frames) {
        formPanel.classList.add("d-none");
        resultPanel.classList.remove("d-none");
        renderGallery(frames, null);
      }

      function renderGallery(frames, records) {
        gallery.innerHTML = "";
        const byName = records
          ? Object.fromEntries(records.map(function (r) { return [r.name, r]; }))
          : {};
        Object.entries(frames).forEach(function (entry) {
          const name = entry[0], url = entry[1];
          const col = document.createElement("div");
          col.className = "col-6 col-md-4 col-lg-3";
          const card = document.createElement("div");
          card.className = "card frame-card p-2 shadow-sm";
          const img = document.createElement("img");
          img.src = url;
          img.alt = name;
          img.addEventListener("click", function () { openViewer(url); });
          const label = document.createElement("p");
          label.className = "text-muted small text-center mb-0 mt-2";
          label.textContent = name;
          card.appendChild(img);
          card.appendChild(label);
          const rec = byName[name];
          if (rec) {
            const remove = document.createElement("button");
            remove.className = "btn btn-sm btn-outline-danger mt-2";
            remove.textContent = "Remove";
            remove.addEventListener("click", async function () {
              await fetch("/api/frames/" + rec.id, { method: "DELETE" });
              col.remove();
            });
            card.appendChild(remove);
          }
          col.appendChild(card);
          gallery.appendChild(col);
        });
      }

      async function loadAllFrames() {
        const resp = await fetch("/api/frames");
        if (!resp.ok) return;
        const body = await resp.json();
        formPanel.classList.add("d-none");
        resultPanel.classList.remove("d-none");
        renderGallery(body.frames, body.records);
      }

      viewAllBtn.addEventListener("click", loadAllFrames);

      document.getElementById("try-another").addEventListener("click", async function () {
        await fetch("/api/reset", { method: "POST" });
        gallery.innerHTML = "";
        resultPanel.classList.add("d-none");
        formPanel.classList.remove("d-none");
        formError.textContent = "";
        form.reset();
      });

      // Modal viewer: one image at a time; the Escape listener only exists
      // while the viewer is open.
      function onViewerKey(e) {
        if (e.key === "Escape") closeViewer();
      }
      function openViewer(url) {
        viewerImg.src = url;
        if (!backdrop.classList.contains("open")) {
          backdrop.classList.add("open");
          window.addEventListener("keydown", onViewerKey);
        }
      }
      function closeViewer() {
        backdrop.classList.remove("open");
        viewerImg.src = "";
        window.removeEventListener("keydown", onViewerKey);
      }
      document.getElementById("viewer-close").addEventListener("click", closeViewer);
      backdrop.addEventListener("click", function (e) {
        if (e.target === backdrop) closeViewer();
      });

      {{if .HasCachedFrames}}
      document.addEventListener("DOMContentLoaded", function () {
        resultPanel.classList.remove("d-none");
      });
      {{end}}
    </script>
  </body>
</html>
`
